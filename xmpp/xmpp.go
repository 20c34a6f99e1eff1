package xmpp

import (
	"crypto/tls"
	"errors"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	// Notifier sends ops messages (startup, recovered panics) to a chat
	// contact. With an empty config Send is a logged no-op.
	Notifier struct {
		Config Config
	}
)

func serverName(jid string) string {
	return strings.Split(jid, "@")[1]
}

func (n Notifier) Send(message string) error {

	if len(n.Config.Jid) == 0 || len(n.Config.Password) == 0 || len(n.Config.To) == 0 {
		log.Debug("missing xmpp config")

		return errors.New("missing xmpp config")
	}

	if len(n.Config.Host) == 0 {
		n.Config.Host = serverName(n.Config.Jid)
	}

	xmpp.DefaultConfig = tls.Config{
		InsecureSkipVerify: true,
	}

	options := xmpp.Options{
		Host:     n.Config.Host,
		User:     n.Config.Jid,
		Password: n.Config.Password,
		NoTLS:    true,
		StartTLS: true,
		Debug:    false,
		Session:  false,
		Status:   "xa",
	}

	talk, err := options.NewClient()
	if err != nil {
		log.Errorf("xmpp client : %s", err.Error())

		return err
	}

	talk.Send(xmpp.Chat{Remote: n.Config.To, Type: "chat", Text: message})

	return nil
}

package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/globe-server/api"
	"github.com/a-bouts/globe-server/session"
	"github.com/a-bouts/globe-server/xmpp"

	_ "net/http/pprof"
)

func main() {

	fs := flag.NewFlagSet("globe-server", flag.ExitOnError)
	var (
		listen       = fs.String("listen", ":8888", "http listen address")
		debug        = fs.Bool("debug", false, "debug logs")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile circle requests")
		sessionTTL   = fs.Duration("session-ttl", 30*time.Minute, "idle session expiration")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	x := &xmpp.Notifier{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}

	sessions := session.InitSessions(*sessionTTL)

	log.Info("Start server")
	go x.Send("globe-server starting")

	router := api.InitServer(*cpuprofile, sessions, x)

	h := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
	h = handlers.CombinedLoggingHandler(os.Stdout, h)

	log.Fatal(http.ListenAndServe(*listen, h))
}

package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/globe-server/api/model"
	"github.com/a-bouts/globe-server/circle"
	"github.com/a-bouts/globe-server/geodesy"
	"github.com/a-bouts/globe-server/geojson"
	"github.com/a-bouts/globe-server/session"
	"github.com/a-bouts/globe-server/xmpp"
)

type server struct {
	cpuprofile bool
	sessions   *session.Sessions
	x          *xmpp.Notifier
}

func InitServer(cpuprofile bool, sessions *session.Sessions, x *xmpp.Notifier) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{
		cpuprofile: cpuprofile,
		sessions:   sessions,
		x:          x,
	}

	router.Use(s.recoverer)

	api := router.PathPrefix("/").Subrouter()

	api.HandleFunc("/globe/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/globe/api/v1").Subrouter()
	apiV1.HandleFunc("/circle", s.circle).Methods("POST")
	apiV1.HandleFunc("/geojson", s.geojson).Methods("POST")
	apiV1.HandleFunc("/antipode/{lat}/{lon}", s.antipode).Methods("GET")
	apiV1.HandleFunc("/destination/{lat}/{lon}/{bearing}/{distance}", s.destination).Methods("GET")
	apiV1.HandleFunc("/session/{id}", s.session).Methods("GET")

	return router
}

func (s *server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log.Errorf("Panic on %s : %v", r.URL.Path, p)
				go s.x.Send(fmt.Sprintf("globe-server panic on %s : %v", r.URL.Path, p))
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

// circle computes the requested ring, antipodal or not, and remembers the
// selection so a page reload starts from the same center.
func (s *server) circle(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	fields := log.Fields{
		"action": "circle",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var r model.CircleRequest
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.NPoints == 0 {
		r.NPoints = circle.PreviewPoints
	}

	start := time.Now()

	res, err := s.buildCircle(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.Session != "" {
		s.sessions.Set(r.Session, r.Circle())
	}

	requestLogger.Infof("Circle {%.4f,%.4f} r=%.0fm n=%d antipodal=%t took %s", r.Center.Lat, r.Center.Lon, r.Radius, r.NPoints, r.Antipodal, time.Now().Sub(start).String())

	json.NewEncoder(w).Encode(res)
}

// geojson returns the same ring as a downloadable FeatureCollection, named
// circle.geojson or antipodal_circle.geojson after the rendered side.
func (s *server) geojson(w http.ResponseWriter, req *http.Request) {

	var r model.CircleRequest
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.NPoints == 0 {
		r.NPoints = circle.RenderPoints
	}

	res, ring, err := s.buildRing(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := "circle"
	if r.Antipodal {
		name = "antipodal_circle"
	}

	log.Infof("GeoJSON %s {%.4f,%.4f} r=%.0fm", name, res.Center.Lat, res.Center.Lon, res.Radius)

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+".geojson\"")
	json.NewEncoder(w).Encode(geojson.CircleCollection(ring, name))
}

func (s *server) buildCircle(r model.CircleRequest) (model.CircleResponse, error) {
	res, _, err := s.buildRing(r)
	return res, err
}

func (s *server) buildRing(r model.CircleRequest) (model.CircleResponse, circle.Ring, error) {

	center := r.Center
	if r.Antipodal {
		var err error
		center, err = geodesy.Antipode(r.Center)
		if err != nil {
			return model.CircleResponse{}, nil, err
		}
	}

	c := circle.Circle{Center: center, Radius: r.Radius}
	ring, err := c.Polygon(r.NPoints)
	if err != nil {
		return model.CircleResponse{}, nil, err
	}

	res := model.CircleResponse{
		Center:    center,
		Radius:    r.Radius,
		Antipodal: r.Antipodal,
		Ring:      ring.Coords(),
	}

	return res, ring, nil
}

func (s *server) antipode(w http.ResponseWriter, req *http.Request) {

	lat, err := strconv.ParseFloat(mux.Vars(req)["lat"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(mux.Vars(req)["lon"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	p, err := geodesy.Antipode(geodesy.LatLon{Lat: lat, Lon: lon})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Infof("Antipode {%.4f,%.4f} : {%.4f,%.4f}", lat, lon, p.Lat, p.Lon)

	json.NewEncoder(w).Encode(model.PointResponse{Point: p})
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {

	var vals [4]float64
	for i, name := range []string{"lat", "lon", "bearing", "distance"} {
		v, err := strconv.ParseFloat(mux.Vars(req)[name], 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		vals[i] = v
	}

	p, err := geodesy.Destination(geodesy.LatLon{Lat: vals[0], Lon: vals[1]}, vals[2], vals[3])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(model.PointResponse{Point: p})
}

func (s *server) session(w http.ResponseWriter, req *http.Request) {

	c, ok := s.sessions.Get(mux.Vars(req)["id"])
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(c)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}

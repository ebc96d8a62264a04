package charting

import (
	"bytes"
	"context"
	"errors"
	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/bitinverter/backend/storage"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"io"
	"net/http"
	"time"
)

type renderer interface {
	Render(w ...io.Writer) error
}

type Service struct {
	store  *storage.Store
	cache  *ttlcache.Cache
	ttl    time.Duration
	server *http.Server
}

func NewService(store *storage.Store, address string, ttl time.Duration) *Service {
	cs := &Service{
		store: store,
		cache: ttlcache.NewCache(),
		ttl:   ttl,
	}
	cs.server = &http.Server{Addr: address, Handler: cs.Router()}
	return cs
}

func (cs *Service) Router() http.Handler {
	router := httprouter.New()
	router.GET("/runs/latest", cs.GetLatestRun)
	router.GET("/runs/history", cs.GetHistory)
	return router
}

// Start serves charts until Stop is called.
func (cs *Service) Start() error {
	log.WithField("address", cs.server.Addr).Infoln("Chart service started")
	if err := cs.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (cs *Service) Stop(ctx context.Context) error {
	defer cs.cache.Close()
	return cs.server.Shutdown(ctx)
}

func (cs *Service) serveCached(w http.ResponseWriter, request *http.Request, build func() (renderer, error)) {
	startTime := time.Now()
	key := request.URL.String()
	if cached, found := cs.cache.Get(key); found {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(cached.([]byte))
		return
	}
	chart, err := build()
	if err != nil {
		if errors.Is(err, storage.ErrNoRuns) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			log.WithError(err).Error("Error building chart")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	var buf bytes.Buffer
	if err = chart.Render(&buf); err != nil {
		log.WithError(err).Error("Error rendering chart")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	page := buf.Bytes()
	cs.cache.SetWithTTL(key, page, cs.ttl)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
	log.WithFields(log.Fields{
		"elapsedTime": time.Since(startTime),
		"path":        request.URL,
	}).Debugln("Chart request")
}

func (cs *Service) GetLatestRun(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	params, err := ParseServiceParams(request.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cs.serveCached(w, request, func() (renderer, error) {
		run, err := cs.store.LatestRun()
		if err != nil {
			return nil, err
		}
		return BuildRunChart(run, params.Strategies, params.Refresh), nil
	})
}

func (cs *Service) GetHistory(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	params, err := ParseServiceParams(request.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cs.serveCached(w, request, func() (renderer, error) {
		runs, err := cs.store.Runs(params.Count)
		if err != nil {
			return nil, err
		}
		if len(runs) == 0 {
			return nil, storage.ErrNoRuns
		}
		return BuildHistoryChart(HistoryData(runs, params.Strategies), params.Refresh), nil
	})
}

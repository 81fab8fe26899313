package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"swbox/internal/application"
	"swbox/internal/repository"
	"swbox/internal/upstream"

	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}

const nowlineBody = `{"data":{
	"c1":{"score":1000},"c2":{"score":1100},"c3":{"score":1200},
	"s1":{"score":1300},"s2":{"score":1400},"s3":{"score":1500},
	"g1":{"score":1600},"g2":{"score":1700},"g3":{"score":1800}}}`

// fakeUpstream serves both swranking and swarena paths and counts hits per
// path prefix.
type fakeUpstream struct {
	hits hitCounters
}

type hitCounters struct {
	summary atomic.Int32
	details atomic.Int32
	search  atomic.Int32
}

func (f *fakeUpstream) handler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/api/player/nowline":
		fmt.Fprint(w, nowlineBody)
	case strings.HasPrefix(path, "/monster/search/"):
		f.hits.search.Add(1)
		if strings.HasSuffix(path, "/lushen") {
			fmt.Fprint(w, `{"data":[{"name":"Lushen","slug":"lushen-wind"}]}`)
			return
		}
		fmt.Fprint(w, `{"data":[]}`)
	case strings.HasSuffix(path, "/details"):
		f.hits.details.Add(1)
		fmt.Fprint(w, `{"data":{"id":14314,"image_filename":"lushen.png"}}`)
	case strings.HasPrefix(path, "/monster/") && strings.HasSuffix(path, "/summary"):
		f.hits.summary.Add(1)
		played := 1000
		if r.URL.Query().Get("isG3") == "true" {
			played = 200
		}
		fmt.Fprintf(w, `{"data":{"played":%d,"winner":%d,"banned":5,"leader":1,"play_rate":12.5,"win_rate":50,"ban_rate":1,"lead_rate":0.1}}`, played, played/2)
	case path == "/general/seasons":
		fmt.Fprint(w, `{"data":[{"season":30},{"season":31}]}`)
	case path == "/player/search/Kiwi":
		fmt.Fprint(w, `{"data":[{"id":77,"wizard_name":"Kiwi"}]}`)
	case path == "/player/77/seasons":
		fmt.Fprint(w, `{"data":[30,31]}`)
	case path == "/player/77/summary":
		season := r.URL.Query().Get("season")
		fmt.Fprintf(w, `{"data":{"wizard_name":"Kiwi","wizard_country":"FR","wizard_picture":"https://p/%s.png","last_rating_id":4002}}`, season)
	default:
		http.NotFound(w, r)
	}
}

type testEnv struct {
	upstream *fakeUpstream
	repos    *repository.Repository
	services *application.Service
	registry *Registry
	loader   *Loader
	router   *Router
}

const ownerKey = "discord:1"

var (
	owner    = Identity{Platform: "discord", ID: "1", Name: "boss", Mention: "<@1>"}
	stranger = Identity{Platform: "discord", ID: "2", Name: "someone", Mention: "<@2>"}
)

func setupEnv(t *testing.T, groupsDir string) *testEnv {
	t.Helper()

	fake := &fakeUpstream{}
	srv := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(srv.Close)

	client := upstream.NewClient(&upstream.Config{
		SWRankingBaseURL: srv.URL,
		SWArenaBaseURL:   srv.URL,
		Timeout:          2 * time.Second,
	})
	repos := repository.NewMemoryRepository(100)
	services := application.NewService(client, repos, nil, &application.Config{DefaultSeason: 30, SeasonFetchConcurrency: 2}, nopLogger{})

	registry := NewRegistry()
	loader := NewLoader(groupsDir, registry, Env{Services: services}, nopLogger{})
	for name, f := range DefaultCatalog() {
		loader.Register(name, f)
	}
	require.NoError(t, loader.LoadAll())

	router := NewRouter(registry, services.UsageService, RouterConfig{
		Prefix:  "!",
		Owners:  []string{ownerKey},
		Timeout: 5 * time.Second,
	}, nopLogger{})

	return &testEnv{
		upstream: fake,
		repos:    repos,
		services: services,
		registry: registry,
		loader:   loader,
		router:   router,
	}
}

func (e *testEnv) dispatch(t *testing.T, author Identity, text string) *Response {
	t.Helper()
	resp, ok := e.router.Dispatch(context.Background(), Request{Author: author, Server: "test", Text: text})
	require.True(t, ok, "message %q was not routed", text)
	require.NotNil(t, resp)
	return resp
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sproutly/matchengine/internal/adapters/http/api"
	"github.com/sproutly/matchengine/internal/adapters/repository"
	"github.com/sproutly/matchengine/internal/app"
	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	store := repository.NewMemoryStore(repository.WithInitial(repository.Snapshot{
		Trainers: []model.Trainer{
			{ID: 1, Name: "Alex", Capabilities: []string{"travel_escort", "first_aid"}, Rating: 4, Experience: 5},
			{ID: 2, Name: "Sam", Capabilities: []string{"first_aid"}, Rating: 5, Experience: 2},
		},
		Activities: []model.Activity{
			{ID: 10, Name: "Homework club", Duration: 1},
			{ID: 11, Name: "Swimming session", Duration: 2},
		},
		Bindings: []model.PackageActivity{{ID: 10, TrainerIDs: []int{1}}},
	}))
	engine := app.NewEngine(app.WithCatalog(store))

	mux := http.NewServeMux()
	api.NewServer(engine, engine, 50).Register(context.Background(), mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func TestMatchTrainersEndpoint(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the trainer match endpoint", t, func() {
		Convey("When posting a capability filter", func() {
			var got struct {
				Trainers []struct {
					ID int `json:"id"`
				} `json:"trainers"`
				Count int `json:"count"`
			}
			status := doJSON(t, srv, http.MethodPost, "/match/trainers",
				`{"capabilities":["travel_escort"]}`, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Count, ShouldEqual, 1)
			So(got.Trainers[0].ID, ShouldEqual, 1)
		})

		Convey("When the limit truncates the result", func() {
			var got struct {
				Count int `json:"count"`
			}
			status := doJSON(t, srv, http.MethodPost, "/match/trainers", `{"limit":1}`, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Count, ShouldEqual, 1)
		})

		Convey("When the body carries an unknown field", func() {
			status := doJSON(t, srv, http.MethodPost, "/match/trainers", `{"nope":true}`, nil)
			So(status, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the date is not RFC3339", func() {
			status := doJSON(t, srv, http.MethodPost, "/match/trainers", `{"date":"tomorrow"}`, nil)
			So(status, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using the wrong method", func() {
			status := doJSON(t, srv, http.MethodGet, "/match/trainers", "", nil)
			So(status, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestBestMatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the best-match endpoint", t, func() {
		Convey("When a trainer qualifies", func() {
			var got struct {
				ID int `json:"id"`
			}
			status := doJSON(t, srv, http.MethodPost, "/match/best",
				`{"capabilities":["travel_escort"]}`, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.ID, ShouldEqual, 1)
		})

		Convey("When nobody qualifies", func() {
			var got struct {
				Code string `json:"code"`
			}
			status := doJSON(t, srv, http.MethodPost, "/match/best",
				`{"capabilities":["overnight_care"]}`, &got)

			So(status, ShouldEqual, http.StatusNotFound)
			So(got.Code, ShouldEqual, "no_match")
		})
	})
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the activity search endpoint", t, func() {
		Convey("When searching by text", func() {
			var got struct {
				Activities []struct {
					ID int `json:"id"`
				} `json:"activities"`
				Stats struct {
					Total    int `json:"total"`
					Filtered int `json:"filtered"`
				} `json:"stats"`
			}
			status := doJSON(t, srv, http.MethodPost, "/activities/search",
				`{"search":"swimming"}`, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Activities, ShouldHaveLength, 1)
			So(got.Activities[0].ID, ShouldEqual, 11)
			So(got.Stats.Total, ShouldEqual, 2)
			So(got.Stats.Filtered, ShouldEqual, 1)
		})
	})
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the selection validation endpoint", t, func() {
		Convey("When the selection is invalid", func() {
			var got struct {
				Valid  bool     `json:"valid"`
				Errors []string `json:"errors"`
			}
			status := doJSON(t, srv, http.MethodPost, "/activities/validate",
				`{"selected_ids":[],"trainer_choice":false,"session_duration":3}`, &got)

			Convey("Then the verdict still travels on a 200", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(got.Valid, ShouldBeFalse)
				So(got.Errors, ShouldHaveLength, 1)
			})
		})

		Convey("When the selection is valid", func() {
			var got struct {
				Valid bool `json:"valid"`
			}
			status := doJSON(t, srv, http.MethodPost, "/activities/validate",
				`{"selected_ids":[10,11],"trainer_choice":false,"session_duration":3}`, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Valid, ShouldBeTrue)
		})
	})
}

func TestRecommendEndpoint(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the mode recommendation endpoint", t, func() {
		Convey("When the mode is known", func() {
			var got struct {
				Mode       string `json:"mode"`
				Activities []struct {
					ID int `json:"id"`
				} `json:"activities"`
			}
			status := doJSON(t, srv, http.MethodGet, "/activities/modes/exam-support", "", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Mode, ShouldEqual, "exam-support")
			So(got.Activities, ShouldHaveLength, 1)
			So(got.Activities[0].ID, ShouldEqual, 10)
		})

		Convey("When the mode is unknown", func() {
			var got struct {
				Activities []struct {
					ID int `json:"id"`
				} `json:"activities"`
			}
			status := doJSON(t, srv, http.MethodGet, "/activities/modes/mystery", "", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Activities, ShouldBeEmpty)
		})

		Convey("When the mode segment is missing", func() {
			status := doJSON(t, srv, http.MethodGet, "/activities/modes/", "", nil)
			So(status, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the catalog endpoint", t, func() {
		Convey("When replacing with a real snapshot", func() {
			var got struct {
				Status   string `json:"status"`
				Trainers int    `json:"trainers"`
			}
			body := `{"trainers":[{"id":5,"name":"Robin","rating":4}],"activities":[],"package_activities":[]}`
			status := doJSON(t, srv, http.MethodPut, "/catalog", body, &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got.Status, ShouldEqual, "ok")
			So(got.Trainers, ShouldEqual, 1)

			Convey("Then the new catalog serves the match endpoints", func() {
				var match struct {
					Count int `json:"count"`
				}
				doJSON(t, srv, http.MethodPost, "/match/trainers", `{}`, &match)
				So(match.Count, ShouldEqual, 1)
			})
		})

		Convey("When replacing with an all-empty snapshot", func() {
			var got struct {
				Code string `json:"code"`
			}
			status := doJSON(t, srv, http.MethodPut, "/catalog", `{}`, &got)

			So(status, ShouldEqual, http.StatusBadRequest)
			So(got.Code, ShouldEqual, "empty_snapshot")
		})
	})
}

func TestStatsAndHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	Convey("Given the operational endpoints", t, func() {
		Convey("When reading the stats", func() {
			var got map[string]any
			status := doJSON(t, srv, http.MethodGet, "/stats", "", &got)

			So(status, ShouldEqual, http.StatusOK)
			So(got["trainers"], ShouldEqual, 2)
			So(got["activities"], ShouldEqual, 2)
		})

		Convey("When probing health", func() {
			status := doJSON(t, srv, http.MethodGet, "/healthz", "", nil)
			So(status, ShouldEqual, http.StatusOK)
		})
	})
}

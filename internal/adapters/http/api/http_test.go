package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/helset/gamenight/internal/adapters/http/api"
	"github.com/helset/gamenight/internal/domain/split"
	"github.com/helset/gamenight/internal/domain/types"
)

// stubDeps is a canned implementation of the handler dependencies.
type stubDeps struct {
	current      split.Split
	standings    []types.RankedEntry
	standingsErr error
	hall         []types.SplitSummary
}

func (s *stubDeps) CurrentSplit() split.Split { return s.current }

func (s *stubDeps) Standings(ctx context.Context) ([]types.RankedEntry, error) {
	return s.standings, s.standingsErr
}

func (s *stubDeps) HallOfFame(ctx context.Context) []types.SplitSummary {
	return s.hall
}

func newTestServer(deps *stubDeps, aliases map[string]string) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, aliases).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestStandingsEndpoint(t *testing.T) {
	Convey("Given the standings endpoint", t, func() {
		deps := &stubDeps{
			current: split.Split{Year: 2025, Number: 1},
			standings: []types.RankedEntry{
				{Rank: 1, Player: "alice", Total: 5},
				{Rank: 2, Player: "bob", Total: 1},
			},
		}
		srv := newTestServer(deps, map[string]string{"alice": "Alice The Great"})
		defer srv.Close()

		Convey("When standings load", func() {
			resp, err := http.Get(srv.URL + "/standings")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then ranked rows are returned with display aliases", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var body struct {
					Year    int `json:"year"`
					Split   int `json:"split"`
					Entries []struct {
						Rank        int     `json:"rank"`
						Player      string  `json:"player"`
						DisplayName string  `json:"display_name"`
						Total       float64 `json:"total"`
					} `json:"entries"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Year, ShouldEqual, 2025)
				So(body.Split, ShouldEqual, 1)
				So(body.Entries, ShouldHaveLength, 2)
				So(body.Entries[0].Player, ShouldEqual, "alice")
				So(body.Entries[0].DisplayName, ShouldEqual, "Alice The Great")
				So(body.Entries[1].DisplayName, ShouldEqual, "bob")
			})

			Convey("Then a request ID is attached to the response", func() {
				So(resp.Header.Get("X-Request-Id"), ShouldNotBeEmpty)
			})
		})

		Convey("When the sheet is unavailable", func() {
			deps.standingsErr = errors.New("sheet fetch failed")

			resp, err := http.Get(srv.URL + "/standings")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the endpoint reports 502 with an error body", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadGateway)

				var body struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "sheet_unavailable")
			})
		})

		Convey("When the method is not GET", func() {
			resp, err := http.Post(srv.URL+"/standings", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the route is not found", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestHallOfFameEndpoint(t *testing.T) {
	Convey("Given the hall of fame endpoint", t, func() {
		deps := &stubDeps{
			current: split.Split{Year: 2025, Number: 1},
			hall: []types.SplitSummary{
				{Year: 2024, Split: 1, Status: types.StatusOffSplit},
				{Year: 2024, Split: 2, Status: types.StatusCompleted, Players: []types.RankedEntry{
					{Rank: 1, Player: "bob", Total: 7},
				}},
				{Year: 2025, Split: 1, Status: types.StatusInProgress},
			},
		}
		srv := newTestServer(deps, nil)
		defer srv.Close()

		Convey("When the hall of fame loads", func() {
			resp, err := http.Get(srv.URL + "/halloffame")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then each split keeps its status and order", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var body []struct {
					Year    int    `json:"year"`
					Split   int    `json:"split"`
					Status  string `json:"status"`
					Players []struct {
						DisplayName string `json:"display_name"`
					} `json:"players"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body, ShouldHaveLength, 3)
				So(body[0].Status, ShouldEqual, "off-split")
				So(body[0].Players, ShouldBeEmpty)
				So(body[1].Status, ShouldEqual, "completed")
				So(body[1].Players[0].DisplayName, ShouldEqual, "bob")
				So(body[2].Status, ShouldEqual, "in-progress")
			})
		})

		Convey("When no splits are enumerated", func() {
			deps.hall = nil

			resp, err := http.Get(srv.URL + "/halloffame")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then an empty list is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var body []json.RawMessage
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body, ShouldBeEmpty)
			})
		})
	})
}

func TestCurrentSplitEndpoint(t *testing.T) {
	Convey("Given the current split endpoint", t, func() {
		deps := &stubDeps{current: split.Split{Year: 2025, Number: 2}}
		srv := newTestServer(deps, nil)
		defer srv.Close()

		Convey("When the split is requested", func() {
			resp, err := http.Get(srv.URL + "/splits/current")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then year and split number are returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var body struct {
					Year  int `json:"year"`
					Split int `json:"split"`
				}
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Year, ShouldEqual, 2025)
				So(body.Split, ShouldEqual, 2)
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		srv := newTestServer(&stubDeps{}, nil)
		defer srv.Close()

		Convey("When health is requested", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then metrics are served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}

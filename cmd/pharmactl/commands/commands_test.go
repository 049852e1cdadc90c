package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run выполняет pharmactl против фейкового backend и возвращает stdout
func run(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--api", server.URL}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestPharmaciesCommand(t *testing.T) {
	var gotPath, gotQuery string
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		w.Write([]byte(`[{"id":1,"name":"Central","lat":47.5,"lng":19.05}]`))
	}, "pharmacies", "--sw", "47.5,19.0", "--ne", "47.6,19.1")

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/pharmacies", gotPath)
	assert.Equal(t, "sw=47.5,19&ne=47.6,19.1", gotQuery)
	assert.Contains(t, out, `"name": "Central"`)
}

func TestTiersCommand_DefaultsToWholeGlobe(t *testing.T) {
	var gotQuery string
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, "tiers")

	require.NoError(t, err)
	assert.Equal(t, "sw=-90,-90&ne=90,90", gotQuery)
}

func TestReviewsCommand_FollowsCursor(t *testing.T) {
	var queries []string
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		if r.URL.Query().Get("k") != "" {
			w.Write([]byte(`[{"id":1,"prescriptionType":"Imago","stars":3,"hrtKind":"e","updatedAt":1000}]`))
			return
		}

		page := make([]map[string]interface{}, 10)
		for i := range page {
			page[i] = map[string]interface{}{
				"id": 20 - i, "prescriptionType": "Imago", "stars": 4, "hrtKind": "e", "updatedAt": 2000 - i,
			}
		}
		json.NewEncoder(w).Encode(page)
	}, "reviews", "7", "--all")

	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, "l=10", queries[0])
	assert.Equal(t, "l=10&k=1991&uk=11", queries[1])

	var reviews []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &reviews))
	assert.Len(t, reviews, 11)
}

func TestReviewsCommand_HalfCursorRejected(t *testing.T) {
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, "reviews", "7", "--k", "1000")

	assert.Error(t, err)
}

func TestReviewCreateCommand(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var body map[string]interface{}
		out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":99,"prescriptionType":"Imago","stars":5,"hrtKind":"e","modCode":"abc"}`))
		}, "review", "create", "7", "--prescription", "Imago", "--stars", "5", "--hrt", "e", "--text", "fine")

		require.NoError(t, err)
		assert.Equal(t, "fine", body["review"])
		assert.NotContains(t, body, "id")
		assert.Contains(t, out, `"modCode": "abc"`)
	})

	t.Run("invalid stars never reach the api", func(t *testing.T) {
		_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}, "review", "create", "7", "--prescription", "Imago", "--stars", "6", "--hrt", "e")

		assert.Error(t, err)
	})

	t.Run("application error carries status", func(t *testing.T) {
		_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":400,"msg":"duplicate"}`))
		}, "review", "create", "7", "--prescription", "Imago", "--stars", "4", "--hrt", "e")

		require.Error(t, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("status %d", http.StatusBadRequest))
	})
}

func TestReviewDeleteCommand(t *testing.T) {
	var gotAuth, gotPath string
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, gotPath = r.Header.Get("Authorization"), r.URL.Path
		w.Write([]byte(`{"id":42}`))
	}, "review", "delete", "7", "42", "--mod-code", "abc")

	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "/api/v1/pharmacies/7/reviews/42", gotPath)
}

func TestReviewsCommand_StopsOnFailedPage(t *testing.T) {
	calls := 0
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("k") != "" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code":500,"msg":"db down"}`))
			return
		}

		page := make([]map[string]interface{}, 10)
		for i := range page {
			page[i] = map[string]interface{}{"id": 20 - i, "stars": 4, "updatedAt": 2000 - i}
		}
		json.NewEncoder(w).Encode(page)
	}, "reviews", "7", "--all")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, 2, calls)
}

func TestReviewsCommand_StartsAfterCursor(t *testing.T) {
	var gotQuery string
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":41,"prescriptionType":"Imago","stars":3,"hrtKind":"e","updatedAt":900}]`))
	}, "reviews", "7", "--k", "1000", "--uk", "42")

	require.NoError(t, err)
	assert.Equal(t, "l=10&k=1000&uk=42", gotQuery)
	assert.Contains(t, out, `"id": 41`)
}

func TestPharmaciesCommand_SinglePharmacyFromListing(t *testing.T) {
	var paths []string
	handler := func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Central"},{"id":7,"name":"Ost"}]`))
	}

	out, err := run(t, handler, "pharmacies", "7")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Ost"`)
	assert.NotContains(t, out, "Central")

	_, err = run(t, handler, "pharmacies", "99")
	assert.Error(t, err)

	assert.Equal(t, []string{"/api/v1/pharmacies", "/api/v1/pharmacies"}, paths)
}

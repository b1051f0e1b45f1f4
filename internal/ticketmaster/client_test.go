package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEvents_QueryParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SearchEvents(context.Background(), "key-1", "Boston", "")
	require.NoError(t, err)

	assert.Equal(t, "key-1", got.Get("apikey"))
	assert.Equal(t, "Boston", got.Get("city"))
	assert.False(t, got.Has("postalCode"))
}

func TestSearchEvents_PostalCodeIncludedWhenSet(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/events.json", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SearchEvents(context.Background(), "key-1", "Boston", "02108")
	require.NoError(t, err)

	assert.Equal(t, "02108", got.Get("postalCode"))
}

func TestSearchEvents_PreservesStatusAndBody(t *testing.T) {
	fault := `{"fault":{"faultstring":"Invalid ApiKey"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(fault))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.SearchEvents(context.Background(), "bad", "Boston", "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, fault, string(res.Body))
}

func TestSearchEvents_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.SearchEvents(context.Background(), "k", "Boston", "")
	assert.Error(t, err)
}

func TestDecodePayload_WithEvents(t *testing.T) {
	res := &Result{
		StatusCode: http.StatusOK,
		Body: []byte(`{"_embedded":{"events":[
			{"id":"vvG1","name":"Concert","url":"https://tm.example/vvG1"},
			{"id":"vvG2"}
		]}}`),
	}

	p, err := res.DecodePayload()
	require.NoError(t, err)
	require.NotNil(t, p.Embedded)
	require.Len(t, p.Embedded.Events, 2)

	assert.Equal(t, Event{ID: "vvG1", Name: "Concert", URL: "https://tm.example/vvG1"}, p.Embedded.Events[0])
	assert.Equal(t, Event{ID: "vvG2"}, p.Embedded.Events[1])
}

func TestDecodePayload_NoEmbeddedSection(t *testing.T) {
	res := &Result{StatusCode: http.StatusOK, Body: []byte(`{"page":{"size":20}}`)}

	p, err := res.DecodePayload()
	require.NoError(t, err)
	assert.Nil(t, p.Embedded)
}

func TestDecodePayload_InvalidJSON(t *testing.T) {
	res := &Result{StatusCode: http.StatusOK, Body: []byte(`<html>oops</html>`)}

	_, err := res.DecodePayload()
	assert.Error(t, err)
}

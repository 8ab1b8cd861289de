package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hunter/pkg/source"

	"github.com/stretchr/testify/require"
)

const ycDirectoryPage = `<html><body>
<a href="/companies/stripe"> Stripe </a>
<a href="/companies/airbnb">Airbnb</a>
<a href="/companies/airbnb">Airbnb</a>
<a href="/companies/x">YC</a>
<a href="/companies/spam">https://spam.example</a>
<a href="/about">About</a>
</body></html>`

const ycTopPage = `<html><body>
<a href="/companies/airbnb">Airbnb</a>
<a href="/companies/doordash">DoorDash</a>
</body></html>`

func TestYCompanies_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/top" {
			_, _ = w.Write([]byte(ycTopPage))

			return
		}
		_, _ = w.Write([]byte(ycDirectoryPage))
	}))
	defer srv.Close()

	src := source.NewYCompanies(srv.Client(), nil, srv.URL+"/companies", srv.URL+"/top")

	names, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Stripe", "Airbnb", "DoorDash"}, names)
}

func TestYCompanies_Fetch_BrokenPageIsSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		_, _ = w.Write([]byte(ycTopPage))
	}))
	defer srv.Close()

	src := source.NewYCompanies(srv.Client(), nil, srv.URL+"/broken", srv.URL+"/top")

	names, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Airbnb", "DoorDash"}, names)
}

func TestYCompanies_Fetch_AllPagesBroken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := source.NewYCompanies(srv.Client(), nil, srv.URL)

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

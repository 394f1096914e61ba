package wordshk

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_FetchCharList_Lookup(t *testing.T) {
	t.Parallel()

	body := `{
		"你": {"nei5": 120, "nei2": 3},
		"好": {"hou2": 200, "hou3": 40}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	list, err := p.FetchCharList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := list.Lookup("你好")
	if result.Word != "你好" {
		t.Errorf("Word = %q, want 你好", result.Word)
	}
	if len(result.Chars) != 2 {
		t.Fatalf("len(Chars) = %d, want 2", len(result.Chars))
	}
	if got, want := result.Chars[0].Readings, []string{"nei5", "nei2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Chars[0].Readings = %v, want %v", got, want)
	}
	if got, want := result.Chars[1].Readings, []string{"hou2", "hou3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Chars[1].Readings = %v, want %v", got, want)
	}
}

func TestCharList_Lookup_UnknownChar(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"你": {"nei5": 1}}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	list, err := p.FetchCharList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := list.Lookup("你Q")
	if len(result.Chars) != 2 {
		t.Fatalf("len(Chars) = %d, want 2", len(result.Chars))
	}
	if len(result.Chars[1].Readings) != 0 {
		t.Errorf("Chars[1].Readings = %v, want empty", result.Chars[1].Readings)
	}
}

func TestCharList_Lookup_TieKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"行": {"hang4": 50, "hong4": 50, "haang4": 2}}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	list, err := p.FetchCharList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := list.Lookup("行").Chars[0].Readings
	want := []string{"hang4", "hong4", "haang4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Readings = %v, want %v", got, want)
	}
}

func TestProvider_FetchCharList_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	if _, err := p.FetchCharList(context.Background()); err == nil {
		t.Fatal("expected status error")
	}
}

func TestProvider_FetchCharList_NotAnObject(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["flat"]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, newTestLogger())
	if _, err := p.FetchCharList(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

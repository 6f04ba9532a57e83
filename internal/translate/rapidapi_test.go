package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thiha-ko/linetrans/internal/detect"
)

func newTestProvider(srv *httptest.Server, timeout time.Duration) *RapidAPI {
	return NewRapidAPI("test-key", srv.URL, "translator.test", timeout)
}

func TestTranslateSuccess(t *testing.T) {
	var gotReq rapidAPIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-rapidapi-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("x-rapidapi-host") != "translator.test" {
			t.Errorf("missing api host header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(rapidAPIResponse{Texts: []string{"hello"}})
	}))
	defer srv.Close()

	p := newTestProvider(srv, 5*time.Second)
	got, err := p.Translate(context.Background(), "สวัสดี", detect.Thai, detect.English)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if len(gotReq.Texts) != 1 || gotReq.Texts[0] != "สวัสดี" {
		t.Errorf("unexpected request texts: %v", gotReq.Texts)
	}
	if gotReq.Source != "th" || gotReq.Target != "en" {
		t.Errorf("unexpected language pair: sl=%s tl=%s", gotReq.Source, gotReq.Target)
	}
}

func TestTranslateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(srv, 5*time.Second)
	_, err := p.Translate(context.Background(), "hi", detect.English, detect.Thai)
	if err == nil {
		t.Fatal("expected error")
	}
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if te.Kind != KindHTTP {
		t.Errorf("expected kind http, got %s", te.Kind)
	}
	if te.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", te.Status)
	}
}

func TestTranslateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	p := newTestProvider(srv, 5*time.Second)
	_, err := p.Translate(context.Background(), "hi", detect.English, detect.Thai)
	if KindOf(err) != KindParse {
		t.Errorf("expected kind parse, got %s (err: %v)", KindOf(err), err)
	}
}

func TestTranslateEmptyTexts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rapidAPIResponse{Texts: nil})
	}))
	defer srv.Close()

	p := newTestProvider(srv, 5*time.Second)
	_, err := p.Translate(context.Background(), "hi", detect.English, detect.Thai)
	if KindOf(err) != KindParse {
		t.Errorf("expected kind parse, got %s (err: %v)", KindOf(err), err)
	}
}

func TestTranslateTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	p := newTestProvider(srv, 50*time.Millisecond)
	_, err := p.Translate(context.Background(), "hi", detect.English, detect.Thai)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if KindOf(err) != KindTimeout {
		t.Errorf("expected kind timeout, got %s (err: %v)", KindOf(err), err)
	}
}

func TestErrorKindOfForeignError(t *testing.T) {
	if KindOf(errors.New("plain")) != KindParse {
		t.Error("foreign errors should default to kind parse")
	}
}

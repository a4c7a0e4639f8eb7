package testsupport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/payload"
)

// PNG is a tiny stand-in for rendered image bytes.
var PNG = []byte("\x89PNG\r\n\x1a\nfake-image")

// RenderAPI is an httptest-backed fake of the rendering API. Its behaviour
// can be changed between calls with the setters.
type RenderAPI struct {
	*httptest.Server

	mu          sync.Mutex
	status      int
	image       []byte
	contentType string
	fonts       *font.List
	fontsStatus int
	requests    []payload.RenderRequest
	rawBodies   [][]byte
	gate        chan struct{}
}

// NewRenderAPI starts a fake serving POST /process_custom, GET /fonts, and
// GET /api/health. It is closed when the test ends.
func NewRenderAPI(t *testing.T) *RenderAPI {
	t.Helper()

	api := &RenderAPI{
		status:      http.StatusOK,
		image:       PNG,
		contentType: "image/png",
		fontsStatus: http.StatusOK,
		fonts: &font.List{
			Local:  []string{"Tajawal", "Cairo"},
			Google: []string{"Roboto", "Montserrat"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/process_custom", api.handleProcess)
	mux.HandleFunc("/fonts", api.handleFonts)
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"healthy","version":"1.0.0"}`)
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

// SetStatus changes the status returned by POST /process_custom.
func (a *RenderAPI) SetStatus(status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = status
}

// SetImage changes the bytes returned on success.
func (a *RenderAPI) SetImage(data []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.image = data
}

// SetContentType changes the Content-Type sent with a successful image.
func (a *RenderAPI) SetContentType(contentType string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.contentType = contentType
}

// SetFonts changes the GET /fonts response; a zero status keeps 200.
func (a *RenderAPI) SetFonts(list *font.List, status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fonts = list
	if status != 0 {
		a.fontsStatus = status
	}
}

// Hold makes POST /process_custom block until Release is called.
func (a *RenderAPI) Hold() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gate = make(chan struct{})
}

// Release unblocks held requests.
func (a *RenderAPI) Release() {
	a.mu.Lock()
	gate := a.gate
	a.gate = nil
	a.mu.Unlock()
	if gate != nil {
		close(gate)
	}
}

// Requests returns the decoded render requests received so far.
func (a *RenderAPI) Requests() []payload.RenderRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]payload.RenderRequest(nil), a.requests...)
}

// RawBodies returns the raw request bodies received so far.
func (a *RenderAPI) RawBodies() [][]byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([][]byte(nil), a.rawBodies...)
}

func (a *RenderAPI) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req, err := payload.Decode(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.requests = append(a.requests, req)
	a.rawBodies = append(a.rawBodies, body)
	status, image, contentType, gate := a.status, a.image, a.contentType, a.gate
	a.mu.Unlock()

	if gate != nil {
		<-gate
	}

	if status < 200 || status >= 300 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"error":"rendering failed"}`)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(image)
}

func (a *RenderAPI) handleFonts(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	list, status := a.fonts, a.fontsStatus
	a.mu.Unlock()

	if list == nil {
		status = http.StatusInternalServerError
	}
	if status != http.StatusOK {
		http.Error(w, "fonts unavailable", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

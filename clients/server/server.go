// Package server exposes merge, unmerge and format sniffing over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xob0t/GoSteg/pkg/codec"
	"github.com/xob0t/GoSteg/pkg/stego"
)

// maxUploadSize bounds the multipart body of a single request.
const maxUploadSize = 64 << 20

// Server stages uploads in a private temp directory and runs the stego
// operations on them.
type Server struct {
	tmpDir string
	opts   stego.Options
}

// New creates a Server whose uploads live under tmpDir. opts provides the
// defaults that requests may override.
func New(tmpDir string, opts stego.Options) *Server {
	return &Server{tmpDir: tmpDir, opts: opts}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/merge", s.handleMerge)
	mux.HandleFunc("POST /api/unmerge", s.handleUnmerge)
	mux.HandleFunc("POST /api/classify", s.handleClassify)
	return mux
}

// RunServe starts the API server on addr until it fails.
func RunServe(addr string, opts stego.Options) error {
	tmpDir, err := os.MkdirTemp("", "gosteg-serve-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	s := New(tmpDir, opts)
	log.Printf("GoSteg API → http://%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// ── Handlers ──

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	req, err := s.stage(w, r, "cover", "secret")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.cleanup()

	opts, err := s.requestOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := req.path("merged.png")
	if err := stego.MergeWith(req.files["cover"], req.files["secret"], out, opts); err != nil {
		writeStegoError(w, err)
		return
	}
	serveFile(w, out, "image/png", "merged.png")
}

func (s *Server) handleUnmerge(w http.ResponseWriter, r *http.Request) {
	req, err := s.stage(w, r, "merged")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.cleanup()

	opts, err := s.requestOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, mimeType := "secret.png", "image/png"
	switch r.FormValue("format") {
	case "", "png":
	case "jpeg", "jpg":
		name, mimeType = "secret.jpg", "image/jpeg"
	default:
		http.Error(w, "format must be png or jpeg", http.StatusBadRequest)
		return
	}

	out := req.path(name)
	if err := stego.UnmergeWith(req.files["merged"], out, opts); err != nil {
		writeStegoError(w, err)
		return
	}
	serveFile(w, out, mimeType, name)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	header := make([]byte, 8)
	n, _ := io.ReadFull(file, header)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"type": codec.ClassifyBytes(header[:n]).String(),
	})
}

// ── Staging ──

type stagedRequest struct {
	dir   string
	files map[string]string
}

func (r *stagedRequest) path(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *stagedRequest) cleanup() {
	os.RemoveAll(r.dir)
}

// stage copies the named multipart fields into a fresh request directory.
func (s *Server) stage(w http.ResponseWriter, r *http.Request, fields ...string) (*stagedRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	dir, err := os.MkdirTemp(s.tmpDir, "req-*")
	if err != nil {
		return nil, fmt.Errorf("create request dir: %w", err)
	}
	req := &stagedRequest{dir: dir, files: make(map[string]string, len(fields))}

	for _, field := range fields {
		file, _, err := r.FormFile(field)
		if err != nil {
			req.cleanup()
			return nil, fmt.Errorf("missing file field %q", field)
		}
		target := req.path(field + ".upload")
		err = saveUpload(file, target)
		file.Close()
		if err != nil {
			req.cleanup()
			return nil, fmt.Errorf("save %s: %w", field, err)
		}
		req.files[field] = target
	}
	return req, nil
}

func saveUpload(src multipart.File, target string) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return err
	}
	return out.Close()
}

// requestOptions overlays the optional depth and fit form values on the
// server defaults.
func (s *Server) requestOptions(r *http.Request) (stego.Options, error) {
	opts := s.opts
	if v := r.FormValue("depth"); v != "" {
		d, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return opts, fmt.Errorf("invalid depth %q", v)
		}
		opts.Depth = uint8(d)
	}
	if v := r.FormValue("fit"); v != "" {
		fit, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid fit %q", v)
		}
		opts.FitSecret = fit
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// ── Helpers ──

// statusFor maps a stego result to an HTTP status.
func statusFor(err error) int {
	code, ok := stego.CodeOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch code {
	case stego.InvalidFileFormat:
		return http.StatusUnsupportedMediaType
	case stego.InvalidDimensions:
		return http.StatusUnprocessableEntity
	case stego.FileNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func writeStegoError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("stego: %v", err)
	}
	var code stego.ReturnCode
	if errors.As(err, &code) {
		http.Error(w, code.Message(), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func serveFile(w http.ResponseWriter, path, mimeType, name string) {
	data, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "read result: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Write(data)
}

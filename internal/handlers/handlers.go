package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/agritech/cropscan-api/internal/catalog"
	"github.com/agritech/cropscan-api/internal/chat"
	"github.com/agritech/cropscan-api/internal/classifier"
	"github.com/agritech/cropscan-api/internal/errx"
	"github.com/agritech/cropscan-api/internal/imaging"
	"github.com/agritech/cropscan-api/internal/logx"
	"github.com/agritech/cropscan-api/internal/translate"
)

const maxUploadBytes = 10 << 20 // 10MB

// Handler serves the prediction, chat and health endpoints.
type Handler struct {
	clf      classifier.Classifier // nil when the model failed to load
	catalog  *catalog.Catalog
	resolver *translate.Resolver
	chat     *chat.Orchestrator
}

func New(clf classifier.Classifier, cat *catalog.Catalog, resolver *translate.Resolver, chatbot *chat.Orchestrator) *Handler {
	return &Handler{
		clf:      clf,
		catalog:  cat,
		resolver: resolver,
		chat:     chatbot,
	}
}

// RegisterRoutes attaches all endpoints to mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.Health)
	mux.HandleFunc("/predict", h.Predict)
	mux.HandleFunc("/chat", h.Chat)
}

type healthResponse struct {
	Status       string `json:"status"`
	ModelStatus  string `json:"model_status"`
	ModelClasses int    `json:"model_classes"`
	AIChatStatus string `json:"ai_chat_status"`
}

// Health reports service and dependency status. Always 200: a missing model
// degrades /predict, it does not take the service down.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:       "AgriTech ML API Running",
		ModelStatus:  "Not Loaded",
		AIChatStatus: "Fallback Mode",
	}
	if h.clf != nil {
		resp.ModelStatus = "Loaded"
		resp.ModelClasses = len(h.clf.Classes())
	}
	if h.chat.Active() {
		resp.AIChatStatus = "Active"
	}
	writeJSON(w, http.StatusOK, resp)
}

type predictResponse struct {
	Disease    string              `json:"disease"`
	Confidence float64             `json:"confidence"`
	Severity   classifier.Severity `json:"severity"`
	Cause      string              `json:"cause"`
	Treatment  string              `json:"treatment"`
	Prevention string              `json:"prevention"`
	Fertilizer string              `json:"fertilizer"`
}

// Predict receives a leaf photo, classifies it and returns a localized
// diagnosis.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	resp, err := h.predict(r)
	if err != nil {
		if errx.StatusOf(err) == http.StatusInternalServerError {
			logx.Error().Err(err).Msg("prediction failed")
		}
		writeDetail(w, errx.StatusOf(err), errx.MessageOf(err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) predict(r *http.Request) (*predictResponse, error) {
	if h.clf == nil {
		return nil, errx.Unavailable(errx.UnavailableMessage)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errx.BadRequest("Failed to parse multipart form.")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errx.BadRequest("No image file provided. Use 'file' as the form field name.")
	}
	defer file.Close()

	// Content type is validated before the file bytes are read.
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errx.BadRequest("Uploaded file is not an image.")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errx.BadRequest("Failed to read uploaded file.")
	}
	if len(data) == 0 {
		return nil, errx.BadRequest("Empty image file received.")
	}

	language := r.FormValue("language")
	if language == "" {
		language = r.URL.Query().Get("language")
	}

	logx.Debug().Str("filename", header.Filename).Int("bytes", len(data)).Msg("received upload")

	size := h.clf.ImageSize()
	tensor, err := imaging.Normalize(data, size, size)
	if err != nil {
		// Malformed input, not a server fault; the reason is safe to return.
		if errors.Is(err, imaging.ErrProcess) {
			return nil, errx.BadRequestErr(err, err.Error())
		}
		return nil, errx.Internal(err)
	}

	probs, err := h.clf.Classify(tensor)
	if err != nil {
		return nil, errx.Internal(err)
	}

	result, err := classifier.Top(probs)
	if err != nil {
		return nil, errx.Internal(err)
	}

	// An index outside the catalog is a configuration defect; degrade to the
	// default record instead of failing the request.
	label := ""
	if classes := h.clf.Classes(); result.ClassIndex < len(classes) {
		label = classes[result.ClassIndex]
	}
	record := h.catalog.Lookup(label)
	record = h.resolver.Resolve(r.Context(), label, language, record)

	display := catalog.DisplayName(label)
	if display == "" {
		display = "Unknown"
	}

	logx.Info().
		Str("disease", display).
		Float64("confidence", result.Confidence).
		Str("severity", string(result.Severity)).
		Msg("prediction served")

	return &predictResponse{
		Disease:    display,
		Confidence: result.Confidence,
		Severity:   result.Severity,
		Cause:      record.Cause,
		Treatment:  record.Treatment,
		Prevention: record.Prevention,
		Fertilizer: record.Fertilizer,
	}, nil
}

type chatRequest struct {
	Message  string      `json:"message"`
	History  []chat.Turn `json:"history"`
	Language string      `json:"language"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat relays a freeform question to the chat orchestrator. Failures of the
// remote model are encoded in the body; the endpoint itself stays 200.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	reply := h.chat.Reply(r.Context(), req.Message, req.History, req.Language)
	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("failed to encode response")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	app "overlay-bot/internal/application"
	"overlay-bot/internal/domain/port"
)

const sessionCookie = "overlay_session"

// ViewerFactory создаёт Viewer над элементами страницы
type ViewerFactory func(surfaces app.Surfaces) *app.Viewer

// Options настройки веб-интерфейса
type Options struct {
	StaticRoot   string   // каталог с images/ и purified/; пусто, если файлы отдаёт внешний сервер
	StaticDirs   []string // подкаталоги StaticRoot, которые раздаются как есть
	ImageBaseURL string   // префикс адреса изображений, "/" для локальной раздачи
}

type Handler struct {
	sessions  *app.SessionService
	renders   *app.RenderService
	newViewer ViewerFactory
	opts      Options
	logger    *slog.Logger
}

func NewHandler(sessions *app.SessionService, renders *app.RenderService, newViewer ViewerFactory, opts Options, logger *slog.Logger) *Handler {
	if opts.ImageBaseURL == "" {
		opts.ImageBaseURL = "/"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sessions:  sessions,
		renders:   renders,
		newViewer: newViewer,
		opts:      opts,
		logger:    logger,
	}
}

// Routes возвращает обработчик со всеми маршрутами
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.IndexHandler)
	mux.HandleFunc("GET /view/{index}", h.ViewHandler)
	mux.HandleFunc("POST /view/{index}/click", h.ClickHandler)
	mux.HandleFunc("GET /api/overlay/{index}", h.OverlayHandler)
	mux.HandleFunc("GET /render/{index}", h.RenderHandler)
	mux.HandleFunc("GET /health", h.HealthHandler)

	// Отдаём изображения и аннотации как статику
	if h.opts.StaticRoot != "" {
		fs := http.FileServer(http.Dir(h.opts.StaticRoot))
		for _, dir := range h.opts.StaticDirs {
			mux.Handle("GET /"+strings.Trim(dir, "/")+"/", fs)
		}
	}

	return h.logRequests(mux)
}

// IndexHandler перенаправляет на последнее показанное изображение
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("error getting session", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/view/"+strconv.Itoa(session.ImageIndex), http.StatusFound)
}

// ViewHandler обрабатывает GET /view/{index}
func (h *Handler) ViewHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	id := h.sessionID(w, r)
	session, err := h.sessions.Get(ctx, id)
	if err != nil {
		h.logger.Error("error getting session", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	p := h.newPage(index)
	p.message = session.Message
	h.newViewer(p.surfaces()).LoadImage(ctx, index)

	if _, err := h.sessions.SetImage(ctx, id, index); err != nil {
		h.logger.Error("error saving session", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.render(w); err != nil {
		h.logger.Error("error rendering page", "index", index, "error", err)
	}
}

// ClickHandler обрабатывает POST /view/{index}/click: нажатие на хотспот
func (h *Handler) ClickHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	position, err := strconv.Atoi(r.FormValue("position"))
	if err != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	id := h.sessionID(w, r)

	p := h.newPage(index)
	viewer := h.newViewer(p.surfaces())
	viewer.LoadImage(ctx, index)
	if !viewer.Activate(index, position) {
		http.Error(w, "Hotspot not found", http.StatusNotFound)
		return
	}

	if err := h.sessions.SetMessage(ctx, id, p.message); err != nil {
		h.logger.Error("error saving message", "error", err)
	}

	http.Redirect(w, r, "/view/"+strconv.Itoa(index), http.StatusSeeOther)
}

// OverlayHandler отдаёт геометрию оверлея в JSON
func (h *Handler) OverlayHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	overlay, err := h.renders.Overlay(r.Context(), index)
	if err != nil {
		respondError(w, err.Error(), sourceStatus(err))
		return
	}

	respondJSON(w, overlay, http.StatusOK)
}

// RenderHandler отдаёт изображение с нарисованным оверлеем
func (h *Handler) RenderHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	out, err := h.renders.RenderIndex(r.Context(), index)
	if err != nil {
		h.logger.Error("error rendering overlay", "index", index, "error", err)
		respondError(w, err.Error(), sourceStatus(err))
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(out.Image))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Image)))
	w.WriteHeader(http.StatusOK)
	w.Write(out.Image)
}

// HealthHandler проверка здоровья сервиса
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) newPage(index int) *page {
	return &page{index: index, imageBase: h.opts.ImageBaseURL}
}

// sessionID читает cookie сессии или выдаёт новую
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Invalid image index", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func sourceStatus(err error) int {
	if errors.Is(err, port.ErrAnnotationsNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, map[string]string{"error": message}, status)
}

package preview

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"zonelight/refactor/internal/corner"
	"zonelight/refactor/internal/indicator"
	apperrors "zonelight/refactor/internal/pkg/errors"
	httppkg "zonelight/refactor/internal/pkg/http"
	"zonelight/refactor/internal/pkg/minijson"
	"zonelight/refactor/internal/zone"
)

// maxZoneBody caps POST /api/zone; metadata documents are tiny.
const maxZoneBody = 64 << 10

type handler struct {
	ctrl *corner.Controller
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httppkg.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	d := pageData{
		State:    h.ctrl.Strip().Snapshot(),
		ZoneFile: h.ctrl.File().Path,
	}
	if err := h.ctrl.Err(); err != nil {
		d.Problem = err.Error()
	}
	templ.Handler(stripPage(d)).ServeHTTP(w, r)
}

type pixelView struct {
	Index int    `json:"index"`
	Color string `json:"color"`
}

type stripView struct {
	Pixels     []pixelView `json:"pixels"`
	Corner     *int        `json:"corner"`
	Arena      string      `json:"arena,omitempty"`
	Fallback   bool        `json:"fallback"`
	Error      string      `json:"error,omitempty"`
	Brightness float64     `json:"brightness"`
	Updated    string      `json:"updated"`
}

func (h *handler) handleStrip(w http.ResponseWriter, _ *http.Request) {
	st := h.ctrl.Strip().Snapshot()
	view := stripView{
		Pixels:     make([]pixelView, 0, len(st.Pixels)),
		Arena:      st.Arena,
		Fallback:   st.Fallback,
		Brightness: indicator.Brightness,
		Updated:    st.Updated.Format(time.RFC3339),
	}
	for i, c := range st.Pixels {
		view.Pixels = append(view.Pixels, pixelView{Index: i, Color: c.Hex()})
	}
	if st.Corner >= 0 {
		view.Corner = &st.Corner
	}
	if err := h.ctrl.Err(); err != nil {
		view.Error = err.Error()
	}
	httppkg.WriteJSON(w, http.StatusOK, view)
}

func (h *handler) handleZone(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.updateZone(w, r)
		return
	}

	m, ok := h.ctrl.Current()
	if !ok {
		msg := "no zone applied"
		if err := h.ctrl.Err(); err != nil {
			msg = err.Error()
		}
		httppkg.WriteErr(w, apperrors.NotFound(msg))
		return
	}
	writeMetadata(w, http.StatusOK, m)
}

func (h *handler) updateZone(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxZoneBody))
	if err != nil {
		httppkg.WriteErr(w, apperrors.Wrap(http.StatusRequestEntityTooLarge, err))
		return
	}

	m, err := h.ctrl.Update(body)
	if err != nil {
		httppkg.WriteErr(w, classify(err))
		return
	}
	writeMetadata(w, http.StatusOK, m)
}

// writeMetadata answers with the same encoding the zone file uses.
func writeMetadata(w http.ResponseWriter, status int, m zone.Metadata) {
	text, err := minijson.DumpsBytes(m.Object())
	if err != nil {
		httppkg.WriteErr(w, err)
		return
	}
	httppkg.WriteRaw(w, status, text)
}

func classify(err error) error {
	switch {
	case minijson.KindOf(err) != 0:
		return apperrors.Wrap(http.StatusBadRequest, err)
	case errors.Is(err, zone.ErrMissingField),
		errors.Is(err, zone.ErrInvalidField),
		errors.Is(err, indicator.ErrZoneRange):
		return apperrors.Wrap(http.StatusUnprocessableEntity, err)
	}
	return err
}

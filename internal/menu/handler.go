package menu

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/catalog"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/options"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/pricing"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/size"
)

type Handler struct {
	loader   *Loader
	resolver *options.Resolver
}

func NewHandler(loader *Loader, resolver *options.Resolver) *Handler {
	return &Handler{loader: loader, resolver: resolver}
}

// --------------------------------------------------
// Public menu (stale-while-revalidate)
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	snap := h.loader.Snapshot()

	// Cold start with nothing cached: load synchronously before answering.
	if snap.Menu == nil && snap.Err == nil {
		h.loader.Load(c.Request.Context())
		snap = h.loader.Snapshot()
	}

	c.JSON(http.StatusOK, stateJSON(snap))
}

// --------------------------------------------------
// Force a fresh load cycle
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	h.loader.Load(c.Request.Context())
	c.JSON(http.StatusOK, stateJSON(h.loader.Snapshot()))
}

func stateJSON(snap State) gin.H {
	menu := catalog.Empty()
	if snap.Menu != nil {
		menu = *snap.Menu
	}

	var errMsg interface{}
	if snap.Err != nil {
		errMsg = snap.Err.Error()
	}

	return gin.H{
		"menu":    menu,
		"loading": snap.Loading,
		"error":   errMsg,
	}
}

// --------------------------------------------------
// Size-aware add-on price
// --------------------------------------------------
func (h *Handler) OptionPrice(c *gin.Context) {
	var req struct {
		Option map[string]interface{} `json:"option"`
		Size   string                 `json:"size"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resolver := h.resolver
	if snap := h.loader.Snapshot(); len(snap.Overrides) > 0 {
		resolver = options.NewResolver(snap.Overrides)
	}

	cents := resolver.PriceCents(req.Option, size.Normalize(req.Size))
	c.JSON(http.StatusOK, gin.H{
		"price_cents": cents,
		"display":     pricing.FormatCents(cents),
	})
}

// --------------------------------------------------
// Grouped add-ons for an item detail panel
// --------------------------------------------------
func (h *Handler) AddonGroups(c *gin.Context) {
	snap := h.loader.Snapshot()
	if snap.Menu == nil {
		c.JSON(http.StatusOK, gin.H{"groups": []options.AddonGroup{}})
		return
	}

	var lists []map[string]interface{}
	for _, ref := range strings.Split(c.Query("refs"), ",") {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		if list, ok := snap.Menu.OptionListsByRef[ref]; ok {
			lists = append(lists, list)
		}
	}

	c.JSON(http.StatusOK, gin.H{"groups": options.GroupAddons(lists)})
}

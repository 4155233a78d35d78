package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/adapters/export"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/config"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
	"github.com/Jetixia-Updates/Butcher-sub004/internal/usecase"
)

type Server struct {
	mux        *http.ServeMux
	catalog    *usecase.CatalogUC
	categories *usecase.CategoryUC
	orders     *usecase.OrderUC
	finance    *usecase.FinanceUC
	analytics  *usecase.AnalyticsUC
	zones      domain.ZoneRepo
	reviews    domain.ReviewRepo

	basketSecret []byte
	adminUser    string
	adminPass    string
	adminSecret  []byte
}

func New(cfg *config.Config, catalog *usecase.CatalogUC, categories *usecase.CategoryUC,
	orders *usecase.OrderUC, finance *usecase.FinanceUC, analytics *usecase.AnalyticsUC,
	zones domain.ZoneRepo, reviews domain.ReviewRepo) http.Handler {

	s := &Server{
		mux:          http.NewServeMux(),
		catalog:      catalog,
		categories:   categories,
		orders:       orders,
		finance:      finance,
		analytics:    analytics,
		zones:        zones,
		reviews:      reviews,
		basketSecret: []byte(cfg.BasketSecret),
		adminUser:    cfg.AdminUser,
		adminPass:    cfg.AdminPass,
		adminSecret:  []byte(cfg.AdminSecret),
	}
	s.routes()
	return Chain(s.mux,
		RateLimit(cfg.RateLimitPerMin),
		CORS,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /api/products", s.handleListProducts)
	s.mux.HandleFunc("GET /api/products/{id}", s.handleGetProduct)
	s.mux.HandleFunc("POST /api/products", s.admin(s.handleCreateProduct))
	s.mux.HandleFunc("PUT /api/products/{id}", s.admin(s.handleUpdateProduct))
	s.mux.HandleFunc("DELETE /api/products/{id}", s.admin(s.handleDeleteProduct))

	s.mux.HandleFunc("GET /api/products/{id}/reviews", s.handleListReviews)
	s.mux.HandleFunc("POST /api/products/{id}/reviews", s.handleCreateReview)

	s.mux.HandleFunc("GET /api/categories", s.handleListCategories)
	s.mux.HandleFunc("POST /api/categories", s.admin(s.handleCreateCategory))
	s.mux.HandleFunc("PUT /api/categories/{id}", s.admin(s.handleUpdateCategory))
	s.mux.HandleFunc("DELETE /api/categories/{id}", s.admin(s.handleDeleteCategory))

	s.mux.HandleFunc("GET /api/zones", s.handleListZones)
	s.mux.HandleFunc("POST /api/zones", s.admin(s.handleSaveZone))
	s.mux.HandleFunc("PUT /api/zones/{id}", s.admin(s.handleSaveZone))
	s.mux.HandleFunc("DELETE /api/zones/{id}", s.admin(s.handleDeleteZone))

	s.mux.HandleFunc("GET /api/basket", s.handleGetBasket)
	s.mux.HandleFunc("POST /api/basket/items", s.handleAddBasketItem)
	s.mux.HandleFunc("PUT /api/basket/items/{productID}", s.handleUpdateBasketItem)
	s.mux.HandleFunc("DELETE /api/basket/items/{productID}", s.handleRemoveBasketItem)
	s.mux.HandleFunc("DELETE /api/basket", s.handleClearBasket)

	s.mux.HandleFunc("POST /api/checkout", s.handleCheckout)

	s.mux.HandleFunc("GET /api/orders", s.admin(s.handleListOrders))
	s.mux.HandleFunc("GET /api/orders/{id}", s.admin(s.handleGetOrder))
	s.mux.HandleFunc("PATCH /api/orders/{id}/status", s.admin(s.handleOrderStatus))

	s.mux.HandleFunc("GET /api/finance", s.admin(s.handleListFinance))
	s.mux.HandleFunc("POST /api/finance", s.admin(s.handleAddFinance))
	s.mux.HandleFunc("DELETE /api/finance/{id}", s.admin(s.handleDeleteFinance))
	s.mux.HandleFunc("GET /api/finance/summary", s.admin(s.handleFinanceSummary))

	s.mux.HandleFunc("GET /api/analytics/dashboard", s.admin(s.handleDashboard))
	s.mux.HandleFunc("GET /api/analytics/revenue-chart", s.admin(s.handleRevenueChart))
	s.mux.HandleFunc("GET /api/analytics/orders-by-status", s.admin(s.handleOrdersByStatus))
	s.mux.HandleFunc("GET /api/reports/sales-by-category", s.admin(s.handleSalesByCategory))

	s.mux.HandleFunc("POST /admin/login", s.handleAdminLogin)
	s.mux.HandleFunc("GET /admin/export/orders.xlsx", s.admin(s.handleExportOrdersXLSX))
	s.mux.HandleFunc("GET /admin/export/finance.xlsx", s.admin(s.handleExportFinanceXLSX))
	s.mux.HandleFunc("GET /admin/export/products.csv", s.admin(s.handleExportProductsCSV))
	s.mux.HandleFunc("POST /admin/import/products.csv", s.admin(s.handleImportProductsCSV))
}

// --- envelope ---

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondOK(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, envelope{Success: true, Data: data})
}

func respondErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, envelope{Success: false, Error: msg})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondErr(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalid):
		respondErr(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		respondErr(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

// --- health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, map[string]any{"status": "ok", "time": time.Now().Unix()})
}

// --- catalog ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.CatalogFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Lang:     domain.ParseLang(q.Get("lang")),
		Sort:     domain.SortKey(q.Get("sort")),
	}
	if v := q.Get("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &p
		}
	}
	if v := q.Get("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &p
		}
	}
	list, err := s.catalog.List(r.Context(), f)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, list)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, p)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeJSON(r, &p); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	if err := s.catalog.Create(r.Context(), &p); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	var p domain.Product
	if err := decodeJSON(r, &p); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	p.ID = id
	if err := s.catalog.Update(r.Context(), &p); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	if err := s.catalog.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"deleted": id})
}

// --- reviews ---

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	list, err := s.reviews.ListByProduct(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, list)
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	var req struct {
		Rating  int    `json:"rating"`
		Author  string `json:"author"`
		Comment string `json:"comment"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondErr(w, http.StatusBadRequest, "rating must be 1..5")
		return
	}
	if _, err := s.catalog.Get(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	rev := &domain.Review{ID: uuid.New(), ProductID: id, Rating: req.Rating, Author: strings.TrimSpace(req.Author), Comment: req.Comment}
	if err := s.reviews.Save(r.Context(), rev); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusCreated, rev)
}

// --- categories ---

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := s.categories.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, list)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	if err := decodeJSON(r, &c); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	if err := s.categories.Save(r.Context(), &c); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	if err := decodeJSON(r, &c); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	c.ID = r.PathValue("id")
	if err := s.categories.Save(r.Context(), &c); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.categories.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"deleted": id})
}

// --- zones ---

func (s *Server) handleListZones(w http.ResponseWriter, r *http.Request) {
	list, err := s.zones.ListAll(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, list)
}

func (s *Server) handleSaveZone(w http.ResponseWriter, r *http.Request) {
	var z domain.DeliveryZone
	if err := decodeJSON(r, &z); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	code := http.StatusCreated
	if raw := r.PathValue("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "bad zone id")
			return
		}
		z.ID = id
		code = http.StatusOK
	}
	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	if strings.TrimSpace(z.NameEN) == "" && strings.TrimSpace(z.NameAR) == "" {
		respondErr(w, http.StatusBadRequest, "zone name required")
		return
	}
	if z.Fee < 0 {
		respondErr(w, http.StatusBadRequest, "fee must be >= 0")
		return
	}
	if err := s.zones.Save(r.Context(), &z); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, code, z)
}

func (s *Server) handleDeleteZone(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad zone id")
		return
	}
	if err := s.zones.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"deleted": id})
}

// --- basket ---

type basketView struct {
	Items  []domain.BasketItem `json:"items"`
	Totals domain.BasketTotals `json:"totals"`
}

func viewOf(b domain.Basket) basketView {
	items := b.Items
	if items == nil {
		items = []domain.BasketItem{}
	}
	return basketView{Items: items, Totals: b.Totals()}
}

func (s *Server) handleGetBasket(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, viewOf(s.readBasket(r)))
}

func (s *Server) handleAddBasketItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uuid.UUID `json:"productId"`
		Qty       float64   `json:"qty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	p, err := s.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !p.Available {
		respondErr(w, http.StatusBadRequest, "product unavailable")
		return
	}
	b := s.readBasket(r)
	b.Add(domain.BasketItem{
		ProductID: p.ID,
		NameEN:    p.NameEN,
		NameAR:    p.NameAR,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Qty:       req.Qty,
	})
	s.writeBasket(w, b)
	respondOK(w, http.StatusOK, viewOf(b))
}

func (s *Server) handleUpdateBasketItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "productID")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	var req struct {
		Qty float64 `json:"qty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	b := s.readBasket(r)
	b.SetQuantity(id, req.Qty)
	s.writeBasket(w, b)
	respondOK(w, http.StatusOK, viewOf(b))
}

func (s *Server) handleRemoveBasketItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "productID")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad product id")
		return
	}
	b := s.readBasket(r)
	b.Remove(id)
	s.writeBasket(w, b)
	respondOK(w, http.StatusOK, viewOf(b))
}

func (s *Server) handleClearBasket(w http.ResponseWriter, r *http.Request) {
	b := domain.Basket{}
	s.writeBasket(w, b)
	respondOK(w, http.StatusOK, viewOf(b))
}

// --- checkout ---

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName string  `json:"customerName"`
		Phone        string  `json:"phone"`
		Email        string  `json:"email"`
		Address      string  `json:"address"`
		Notes        string  `json:"notes"`
		ZoneID       *string `json:"zoneId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	in := usecase.CheckoutInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Notes:        req.Notes,
	}
	if req.ZoneID != nil && *req.ZoneID != "" {
		zid, err := uuid.Parse(*req.ZoneID)
		if err != nil {
			respondErr(w, http.StatusBadRequest, "bad zone id")
			return
		}
		in.ZoneID = &zid
	}
	b := s.readBasket(r)
	o, err := s.orders.Checkout(r.Context(), &b, in)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeBasket(w, domain.Basket{})
	respondOK(w, http.StatusCreated, o)
}

// --- orders (admin) ---

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.OrderFilter{Status: domain.OrderStatus(q.Get("status"))}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.PageSize, _ = strconv.Atoi(q.Get("page_size"))
	if v := q.Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.To = t.AddDate(0, 0, 1)
		}
	}
	list, total, err := s.orders.List(r.Context(), f)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"orders": list, "total": total})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad order id")
		return
	}
	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, o)
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad order id")
		return
	}
	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	actor := r.Header.Get("x-user-id")
	o, err := s.orders.UpdateStatus(r.Context(), id, domain.OrderStatus(req.Status), req.Notes, actor)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, o)
}

// --- finance (admin) ---

func rangeFromQuery(r *http.Request) (time.Time, time.Time) {
	q := r.URL.Query()
	var from, to time.Time
	if v := q.Get("from"); v != "" {
		from, _ = time.Parse("2006-01-02", v)
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t.AddDate(0, 0, 1)
		}
	}
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -29)
	}
	return from, to
}

func (s *Server) handleListFinance(w http.ResponseWriter, r *http.Request) {
	from, to := rangeFromQuery(r)
	list, err := s.finance.List(r.Context(), from, to)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, list)
}

func (s *Server) handleAddFinance(w http.ResponseWriter, r *http.Request) {
	var rec domain.FinanceRecord
	if err := decodeJSON(r, &rec); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	if err := s.finance.Add(r.Context(), &rec); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteFinance(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, "bad record id")
		return
	}
	if err := s.finance.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"deleted": id})
}

func (s *Server) handleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	from, to := rangeFromQuery(r)
	sum, err := s.finance.Summary(r.Context(), from, to)
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, sum)
}

// --- analytics (admin) ---

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.analytics.Dashboard(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, stats)
}

func (s *Server) handleRevenueChart(w http.ResponseWriter, r *http.Request) {
	points, err := s.analytics.RevenueChart(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, points)
}

func (s *Server) handleOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := s.analytics.OrdersByStatus(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, counts)
}

func (s *Server) handleSalesByCategory(w http.ResponseWriter, r *http.Request) {
	sales, err := s.analytics.SalesByCategory(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		s.fail(w, err)
		return
	}
	respondOK(w, http.StatusOK, sales)
}

// --- admin login & exports ---

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, "bad request body")
		return
	}
	if !secureCompare(req.User, s.adminUser) || !secureCompare(req.Pass, s.adminPass) {
		respondErr(w, http.StatusUnauthorized, "bad credentials")
		return
	}
	tok, exp := s.issueAdminToken(req.User, 6*time.Hour)
	respondOK(w, http.StatusOK, map[string]any{"token": tok, "expiresAt": exp.Unix()})
}

func (s *Server) handleExportOrdersXLSX(w http.ResponseWriter, r *http.Request) {
	from, to := rangeFromQuery(r)
	orders, err := s.orders.Orders.ListInRange(r.Context(), from, to)
	if err != nil {
		s.fail(w, err)
		return
	}
	f, err := export.OrdersWorkbook(orders)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx")
	}
}

func (s *Server) handleExportFinanceXLSX(w http.ResponseWriter, r *http.Request) {
	from, to := rangeFromQuery(r)
	recs, err := s.finance.List(r.Context(), from, to)
	if err != nil {
		s.fail(w, err)
		return
	}
	f, err := export.FinanceWorkbook(recs)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=finance_%s_%s.xlsx", from.Format("2006-01-02"), to.Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx")
	}
}

func (s *Server) handleExportProductsCSV(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Products.ListAll(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	data, err := export.ProductsCSV(list)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=products.csv")
	_, _ = w.Write(data)
}

func (s *Server) handleImportProductsCSV(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "read body")
		return
	}
	products, err := export.ParseProductsCSV(body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err.Error())
		return
	}
	for i := range products {
		if err := s.catalog.Products.Save(r.Context(), &products[i]); err != nil {
			s.fail(w, err)
			return
		}
	}
	respondOK(w, http.StatusOK, map[string]any{"imported": len(products)})
}

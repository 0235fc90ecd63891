package orders

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"petalia/db"
	"petalia/globals"
	"petalia/models"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) loadOwnOrder(ctx context.Context, r *http.Request, orderID string) (*models.Order, int) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	roles, _ := r.Context().Value(globals.RoleKey).([]string)

	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		return nil, http.StatusNotFound
	}
	if order.UserID != userID && !utils.HasRole(roles, "admin") {
		return nil, http.StatusForbidden
	}
	return &order, 0
}

// PickupQR returns a PNG QR code an in-store florist scans to pull up the
// order.
func (h *Handler) PickupQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, errCode := h.loadOwnOrder(ctx, r, ps.ByName("orderid"))
	if errCode != 0 {
		http.Error(w, http.StatusText(errCode), errCode)
		return
	}

	qrPayload := fmt.Sprintf("order=%s&user=%s&ts=%d", order.OrderID, order.UserID, order.CreatedAt.Unix())
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}

// Receipt renders the order as a PDF.
func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, errCode := h.loadOwnOrder(ctx, r, ps.ByName("orderid"))
	if errCode != 0 {
		http.Error(w, http.StatusText(errCode), errCode)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Petalia Flower Shop", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, "Order "+order.OrderID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Placed "+order.CreatedAt.Format("2 Jan 2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Deliver to: "+order.Address, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Line", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		pdf.CellFormat(90, 8, it.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", it.Price*float64(it.Quantity)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 10, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f", order.Total), "T", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.Ln(4)
	pdf.CellFormat(0, 8, "Payment: "+order.PaymentMethod+" ("+order.PaymentStatus+")", "", 1, "L", false, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="receipt-`+order.OrderID+`.pdf"`)
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Failed to render receipt", http.StatusInternalServerError)
	}
}

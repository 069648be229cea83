package model

import "time"

// DonationType distinguishes the two kinds of donation listings.
type DonationType string

const (
	DonationOldAge DonationType = "old-age"
	DonationOrphan DonationType = "orphan"
)

// ParseDonationType validates a raw donation type string.
func ParseDonationType(s string) (DonationType, bool) {
	switch DonationType(s) {
	case DonationOldAge, DonationOrphan:
		return DonationType(s), true
	}
	return "", false
}

// DonationItem is a donation listing with its QR code and an optional photo.
// QRKey and HomeKey are object storage keys; presigned URLs are resolved when
// the item is served.
type DonationItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      DonationType `json:"type"`
	QRKey     string       `json:"-"`
	HomeKey   string       `json:"-"`
	QRURL     string       `json:"qr_url"`
	HomeURL   string       `json:"home_url,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// DonationTransaction is a donor-submitted payment record awaiting manual
// verification against the uploaded screenshot.
type DonationTransaction struct {
	ID            string    `json:"id"`
	ItemName      string    `json:"item_name"`
	Amount        float64   `json:"amount"`
	DonorName     string    `json:"name"`
	DonorEmail    string    `json:"email"`
	DonorPhone    string    `json:"phone"`
	ScreenshotKey string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationDailyStat is the per-item total donated on a calendar day.
type DonationDailyStat struct {
	ItemName    string  `json:"item_name"`
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
}

package dto

import (
	"bytes"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FlexFloat accepts a JSON number or a numeric string ("5000000").
// Unparsable values decode to zero rather than failing the request.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

type ScheduleProductInput struct {
	ProductID  uuid.UUID `json:"productId"`
	PromoPrice FlexFloat `json:"promoPrice"`
}

type ScheduleVoucherInput struct {
	VoucherID uuid.UUID `json:"voucherId"`
}

type TalkingPointInput struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type CreateScheduleRequest struct {
	HostID        string                 `json:"hostId"`
	Title         string                 `json:"title"`
	Platform      string                 `json:"platform"`
	StoreName     string                 `json:"storeName"`
	ScheduledAt   string                 `json:"scheduledAt"`
	SalesTarget   FlexFloat              `json:"salesTarget"`
	Products      []ScheduleProductInput `json:"products"`
	Vouchers      []ScheduleVoucherInput `json:"vouchers"`
	TalkingPoints []TalkingPointInput    `json:"talkingPoints"`
}

// UpdateScheduleRequest uses pointers for scalar fields so "absent" is
// distinguishable from "zero": absent scalars keep their stored value.
// The three child collections are always replaced wholesale with whatever
// the payload carries, including nothing: omitting products clears
// products. That replace-with-empty behavior is part of the API contract.
type UpdateScheduleRequest struct {
	HostID        *string                `json:"hostId"`
	Title         *string                `json:"title"`
	Platform      *string                `json:"platform"`
	StoreName     *string                `json:"storeName"`
	ScheduledAt   *string                `json:"scheduledAt"`
	SalesTarget   *FlexFloat             `json:"salesTarget"`
	Products      []ScheduleProductInput `json:"products"`
	Vouchers      []ScheduleVoucherInput `json:"vouchers"`
	TalkingPoints []TalkingPointInput    `json:"talkingPoints"`
}

// ScheduleSummary is the host-facing list item.
type ScheduleSummary struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Platform       string     `json:"platform"`
	StoreName      string     `json:"storeName"`
	ScheduledAt    time.Time  `json:"scheduledAt"`
	SalesTarget    float64    `json:"salesTarget"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt"`
}

type HostSummary struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
}

// AdminScheduleSummary is the admin list item: schedule plus host.
type AdminScheduleSummary struct {
	ScheduleSummary
	Host HostSummary `json:"host"`
}

type BriefingProduct struct {
	ID           uuid.UUID `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	DefaultPrice float64   `json:"defaultPrice"`
	PromoPrice   float64   `json:"promoPrice"`
}

type BriefingVoucher struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
}

type BriefingTalkingPoint struct {
	ID    uuid.UUID `json:"id"`
	Text  string    `json:"text"`
	Order int       `json:"order"`
}

// Briefing is the host-facing schedule detail: the flattened product and
// voucher projections a host needs on air.
type Briefing struct {
	ScheduleSummary
	Products      []BriefingProduct      `json:"products"`
	Vouchers      []BriefingVoucher      `json:"vouchers"`
	TalkingPoints []BriefingTalkingPoint `json:"talkingPoints"`
}

type AcknowledgeResponse struct {
	ID             uuid.UUID `json:"id"`
	AcknowledgedAt time.Time `json:"acknowledgedAt"`
}

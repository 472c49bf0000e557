package model

import "time"

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
	// BookingCanceled is part of the lifecycle enumeration but no operation
	// transitions into it yet.
	BookingCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
	ItemID   int64         `json:"-"`
	BookerID int64         `json:"-"`
	Item     ItemShort     `json:"item"`
	Booker   UserShort     `json:"booker"`
}

// BookingInfo is the compact last/next booking shape on item views.
type BookingInfo struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

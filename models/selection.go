package models

import "time"

// DateLayout is the format used for check-in, check-out and service dates.
const DateLayout = "2006-01-02"

// SelectedRoom is a room upgrade in the guest's selection.
type SelectedRoom struct {
	ID                 string   `json:"id" binding:"required"`
	RoomType           string   `json:"roomType" binding:"required"`
	Price              float64  `json:"price" binding:"gte=0"`
	CheckIn            string   `json:"checkIn"`
	CheckOut           string   `json:"checkOut"`
	Attributes         []string `json:"attributes,omitempty"`
	CustomizationTotal float64  `json:"customizationTotal,omitempty"`
}

// Total is the room price plus its customizations.
func (r SelectedRoom) Total() float64 {
	return r.Price + r.CustomizationTotal
}

// Stay parses the check-in/check-out interval.
func (r SelectedRoom) Stay() (time.Time, time.Time, bool) {
	start, err := time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(DateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ExtraType classifies an extra.
type ExtraType string

const (
	ExtraService  ExtraType = "service"
	ExtraAmenity  ExtraType = "amenity"
	ExtraTransfer ExtraType = "transfer"
)

// SelectedExtra is a service, amenity or transfer in the guest's selection.
type SelectedExtra struct {
	ID           string    `json:"id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Price        float64   `json:"price" binding:"gte=0"`
	Units        int       `json:"units" binding:"gte=0"`
	Type         ExtraType `json:"type"`
	ServiceDate  string    `json:"serviceDate,omitempty"`
	ServiceDates []string  `json:"serviceDates,omitempty"`
}

// Total is the extra price times units.
func (e SelectedExtra) Total() float64 {
	return e.Price * float64(e.Units)
}

// SingleServiceDate returns the service date when the extra lands on exactly one day.
func (e SelectedExtra) SingleServiceDate() (string, bool) {
	switch {
	case len(e.ServiceDates) == 1:
		return e.ServiceDates[0], true
	case len(e.ServiceDates) == 0 && e.ServiceDate != "":
		return e.ServiceDate, true
	}
	return "", false
}

// ItemKind discriminates SelectionItem.
type ItemKind string

const (
	KindRoom  ItemKind = "room"
	KindExtra ItemKind = "extra"
)

// SelectionItem is either a room or an extra. Exactly one of Room/Extra is set, matching Kind.
type SelectionItem struct {
	Kind  ItemKind       `json:"kind"`
	Room  *SelectedRoom  `json:"room,omitempty"`
	Extra *SelectedExtra `json:"extra,omitempty"`
}

func RoomItem(r SelectedRoom) SelectionItem {
	return SelectionItem{Kind: KindRoom, Room: &r}
}

func ExtraItem(e SelectedExtra) SelectionItem {
	return SelectionItem{Kind: KindExtra, Extra: &e}
}

// ID returns the underlying item id.
func (i SelectionItem) ID() string {
	switch i.Kind {
	case KindRoom:
		return i.Room.ID
	case KindExtra:
		return i.Extra.ID
	}
	return ""
}

// Name returns the room type or extra name.
func (i SelectionItem) Name() string {
	switch i.Kind {
	case KindRoom:
		return i.Room.RoomType
	case KindExtra:
		return i.Extra.Name
	}
	return ""
}

// Price returns the item's contribution to the base total.
func (i SelectionItem) Price() float64 {
	switch i.Kind {
	case KindRoom:
		return i.Room.Total()
	case KindExtra:
		return i.Extra.Total()
	}
	return 0
}

// Selection is a snapshot of a guest's rooms and extras.
type Selection struct {
	Rooms  []SelectedRoom  `json:"rooms" binding:"dive"`
	Extras []SelectedExtra `json:"extras" binding:"dive"`
}

// Items flattens the selection, rooms first.
func (s Selection) Items() []SelectionItem {
	items := make([]SelectionItem, 0, len(s.Rooms)+len(s.Extras))
	for _, r := range s.Rooms {
		items = append(items, RoomItem(r))
	}
	for _, e := range s.Extras {
		items = append(items, ExtraItem(e))
	}
	return items
}

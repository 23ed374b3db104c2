package inventory

import (
	"fmt"
	"strings"
)

// BaseStore identifies the upstream business unit a location belongs to.
// It decides which feed produced the location and how its SKUs are rendered.
type BaseStore int

const (
	BaseStoreNO BaseStore = iota // Vitusapotek, Norway
	BaseStoreSE                  // Lloyds Apotek, Sweden
	BaseStoreBE                  // Lloyds Pharmacia, Belgium
	BaseStoreDE                  // Recusana, Germany
)

type baseStoreInfo struct {
	code  string
	name  string
	width int
}

var baseStores = [...]baseStoreInfo{
	BaseStoreNO: {code: "NO", name: "NO_VITUSAPOTEK", width: 6},
	BaseStoreSE: {code: "SE", name: "SE_LLOYDSAPOTEK", width: 6},
	BaseStoreBE: {code: "BE", name: "BE_LLOYDSPHARMACIA", width: 7},
	BaseStoreDE: {code: "DE", name: "DE_RECUSANA", width: 6},
}

// AllBaseStores lists every known base store in declaration order.
func AllBaseStores() []BaseStore {
	return []BaseStore{BaseStoreNO, BaseStoreSE, BaseStoreBE, BaseStoreDE}
}

// ParseBaseStore accepts either the short code ("NO") or the full name ("NO_VITUSAPOTEK").
func ParseBaseStore(s string) (BaseStore, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, info := range baseStores {
		if s == info.code || s == info.name {
			return BaseStore(i), nil
		}
	}
	return 0, fmt.Errorf("unknown base store %q", s)
}

// Valid reports whether b is one of the declared base stores.
func (b BaseStore) Valid() bool {
	return b >= 0 && int(b) < len(baseStores)
}

// Code returns the two letter country code of the base store.
func (b BaseStore) Code() string {
	if !b.Valid() {
		return fmt.Sprintf("BaseStore(%d)", int(b))
	}
	return baseStores[b].code
}

// String returns the full base store name.
func (b BaseStore) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BaseStore(%d)", int(b))
	}
	return baseStores[b].name
}

// SKUWidth is the number of digits SKUs are zero padded to for this base store.
func (b BaseStore) SKUWidth() int {
	if !b.Valid() {
		return 0
	}
	return baseStores[b].width
}

// FormatSKU renders sku the way the base store presents it externally.
func (b BaseStore) FormatSKU(sku int) string {
	return fmt.Sprintf("%0*d", b.SKUWidth(), sku)
}

// MarshalText encodes the base store as its full name.
func (b BaseStore) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid base store %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText accepts the same forms as ParseBaseStore.
func (b *BaseStore) UnmarshalText(text []byte) error {
	v, err := ParseBaseStore(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates the upstream API's habit of
// returning numeric fields either as JSON numbers or as quoted strings.
// Coercion happens once here, at the fetch boundary.
type FlexFloat float64

// UnmarshalJSON implementa a coerção numérica para FlexFloat.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Campos como "N/A" aparecen en instalaciones viejas; los tratamos como cero.
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// MarshalJSON emits a plain JSON number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// Device is a read-only snapshot of a monitored network device.
type Device struct {
	DeviceID string `json:"device_id"`
	Hostname string `json:"hostname"`
	SysName  string `json:"sysName"`
	Location string `json:"location"`
	Status   int    `json:"status"`
}

// Port is a device interface, used for topology context and as the
// capacity/utilization fallback when billing data is absent.
type Port struct {
	PortID       string    `json:"port_id"`
	DeviceID     string    `json:"device_id"`
	IfAlias      string    `json:"ifAlias"`
	IfDescr      string    `json:"ifDescr"`
	IfSpeed      FlexFloat `json:"ifSpeed"`      // bits/s
	IfOperStatus string    `json:"ifOperStatus"` // "up" | "down"
	InRate       FlexFloat `json:"ifInOctets_rate"`
	OutRate      FlexFloat `json:"ifOutOctets_rate"`
}

// Billing type tags as reported by the upstream monitoring source.
const (
	BillingTypeQuota = "quota" // usage billing: quota is bytes (or a pre-scaled cost)
	BillingTypeCDR   = "cdr"   // committed-data-rate billing: allowed is bits/s
)

// BillingRecord is a provider invoice/contract line. Primary source of
// truth for cost and utilization when present and well-formed.
type BillingRecord struct {
	BillID       string    `json:"bill_id"`
	Name         string    `json:"bill_name"`
	Type         string    `json:"bill_type"`
	Quota        FlexFloat `json:"bill_quota"`
	Allowed      FlexFloat `json:"bill_allowed"`
	Used         FlexFloat `json:"total_data"` // bytes consumed in the period
	Rate95thIn   FlexFloat `json:"rate_95th_in"`
	Rate95thOut  FlexFloat `json:"rate_95th_out"`
	BillLocation string    `json:"bill_notes"`
}

package domain

import "strings"

// Carrier identifies a mobile-money network operator.
type Carrier string

const (
	CarrierMTN        Carrier = "MTN"
	CarrierVodafone   Carrier = "VODAFONE"
	CarrierAirtelTigo Carrier = "AIRTELTIGO"
	CarrierUnknown    Carrier = ""
)

// Prefix tables for Ghanaian MSISDNs, local and international format.
var carrierPrefixes = map[Carrier][]string{
	CarrierMTN: {
		"024", "025", "053", "054", "055", "059",
		"+23324", "+23325", "+23353", "+23354", "+23355", "+23359",
	},
	CarrierVodafone: {
		"020", "050",
		"+23320", "+23350",
	},
	CarrierAirtelTigo: {
		"026", "027", "057",
		"+23326", "+23327", "+23357",
	},
}

// DetectCarrier maps a phone number to its mobile-money carrier by prefix.
// Unrecognized, partial or empty input yields CarrierUnknown; callers must
// treat that as "not enough input yet", not as a failure.
func DetectCarrier(msisdn string) Carrier {
	if msisdn == "" {
		return CarrierUnknown
	}
	for _, carrier := range []Carrier{CarrierMTN, CarrierVodafone, CarrierAirtelTigo} {
		for _, prefix := range carrierPrefixes[carrier] {
			if strings.HasPrefix(msisdn, prefix) {
				return carrier
			}
		}
	}
	return CarrierUnknown
}

// IsKnown reports whether the carrier was detected.
func (c Carrier) IsKnown() bool {
	return c != CarrierUnknown
}

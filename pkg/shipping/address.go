package shipping

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/perchworks/restock/pkg/order"
)

// Address is a parsed recipient address.
type Address struct {
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
}

// DefaultCountry is assumed when an address carries no trailing ISO
// 3166-1 alpha-2 qualifier.
const DefaultCountry = "US"

// Per-country postal formats. This is deliberately the short list the shop
// actually ships to; anything else is reported, not guessed at.
var countryFormats = map[string]struct {
	zip   *regexp.Regexp
	state *regexp.Regexp
}{
	"US": {zip: regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`), state: regexp.MustCompile(`^[A-Z][A-Z]$`)},
	"FR": {zip: regexp.MustCompile(`^[0-9]{5}$`)},
	"GB": {zip: regexp.MustCompile(`^[A-Z][A-Z0-9]{1,3} [0-9][A-Z]{2}$`)},
	"IE": {zip: regexp.MustCompile(`^[A-Z][0-9][0-9W] [A-Z0-9]{4}$`), state: regexp.MustCompile(`^(County [A-Za-z]*|Co\. [A-Za-z]*)$`)},
}

var (
	countryCode = regexp.MustCompile(`^[A-Z][A-Z]$`)
	stateAndZip = regexp.MustCompile(`(.*) ([A-Z]{2}),? ([0-9]{5})$`)
)

// unitIdentifiers mark where a single street segment splits into two lines.
var unitIdentifiers = []string{"Apt", "#", "Apartment", "Unit"}

// ParseAddress parses a free-text, comma-separated address. Lines without a
// comma are notes to self (hand-deliveries) and return nil with no error.
// Addresses qualified with a trailing ", XX" country code are parsed with
// that country's postal format; everything else must look like a US
// address.
func ParseAddress(text string) (*Address, error) {
	if !strings.Contains(text, ",") {
		return nil, nil
	}

	country := DefaultCountry
	if last := strings.TrimSpace(text[strings.LastIndex(text, ",")+1:]); countryCode.MatchString(last) {
		if _, known := countryFormats[last]; !known {
			return nil, fmt.Errorf("%w: unsupported destination country %q", order.ErrConfiguration, last)
		}
		country = last
		text = text[:strings.LastIndex(text, ",")]
	}

	if country == "US" {
		return parseUS(text)
	}
	return parseForeign(text, country)
}

// parseUS splits "street[, unit], city ST zip" into structured fields.
func parseUS(text string) (*Address, error) {
	m := stateAndZip.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, fmt.Errorf("%w: address %q does not end in a US state and zip", order.ErrConfiguration, text)
	}
	addr := &Address{State: m[2], Zip: m[3], Country: "US"}

	parts := strings.Split(strings.TrimRight(strings.TrimSpace(m[1]), ","), ", ")
	addr.City = strings.TrimSpace(parts[len(parts)-1])
	street := parts[:len(parts)-1]

	switch len(street) {
	case 1:
		addr.Street1 = strings.TrimSpace(street[0])
		for _, unit := range unitIdentifiers {
			if idx := strings.Index(street[0], unit); idx > -1 {
				addr.Street1 = strings.TrimSpace(street[0][:idx])
				addr.Street2 = strings.TrimSpace(street[0][idx:])
				break
			}
		}
	case 2:
		addr.Street1 = strings.TrimSpace(street[0])
		addr.Street2 = strings.TrimSpace(street[1])
	default:
		return nil, fmt.Errorf("%w: cannot split street from %q", order.ErrConfiguration, text)
	}
	return addr, nil
}

// parseForeign fills the fields a non-US format defines, validating the
// postal code against the country's pattern.
func parseForeign(text, country string) (*Address, error) {
	format := countryFormats[country]
	parts := strings.Split(strings.TrimSpace(text), ", ")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: address %q too short for %s format", order.ErrConfiguration, text, country)
	}

	addr := &Address{Country: country}
	rest := parts[:0:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch {
		case format.zip != nil && addr.Zip == "" && format.zip.MatchString(p):
			addr.Zip = p
		case format.state != nil && addr.State == "" && format.state.MatchString(p):
			addr.State = p
		default:
			rest = append(rest, p)
		}
	}
	if addr.Zip == "" {
		return nil, fmt.Errorf("%w: no %s postal code in %q", order.ErrConfiguration, country, text)
	}
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no street or city in %q", order.ErrConfiguration, text)
	}
	addr.City = rest[len(rest)-1]
	if len(rest) > 1 {
		addr.Street1 = rest[0]
	}
	if len(rest) > 2 {
		addr.Street2 = strings.Join(rest[1:len(rest)-1], ", ")
	}
	return addr, nil
}

package classify

// Plaza identities (geographic markets served by the operation).
const (
	PlazaMonterrey   = "Monterrey"
	PlazaGuadalajara = "Guadalajara"
	PlazaQueretaro   = "Querétaro"
	PlazaCDMX        = "CDMX"
	PlazaTijuana     = "Tijuana"
	PlazaUnknown     = "Unknown"
)

// PlazaTable is the ordered plaza signature registry, mixing location
// codes and place names as they appear in device locations and billing
// record notes.
var PlazaTable = []Entry{
	{Identity: PlazaMonterrey, Signatures: []string{"mty", "monterrey", "apodaca", "guadalupe", "san nicolas", "santa catarina"}},
	{Identity: PlazaGuadalajara, Signatures: []string{"gdl", "guadalajara", "zapopan", "tlaquepaque"}},
	{Identity: PlazaQueretaro, Signatures: []string{"qro", "queretaro", "querétaro", "juriquilla"}},
	{Identity: PlazaCDMX, Signatures: []string{"cdmx", "mexico city", "ciudad de mexico", "df-", "mex-"}},
	{Identity: PlazaTijuana, Signatures: []string{"tij", "tijuana"}},
}

var plazaMatcher = NewMatcher(PlazaTable, PlazaUnknown)

// Plaza maps a free-text or location descriptor to a plaza identity.
// Unmatched records land in the Unknown bucket rather than being
// dropped, so aggregate totals stay auditable.
func Plaza(text string) string {
	return plazaMatcher.Match(text)
}

// KnownPlazas lists the plaza identities in registry order, without the
// Unknown bucket. Used to scope upstream queries.
func KnownPlazas() []string {
	out := make([]string, 0, len(PlazaTable))
	for _, e := range PlazaTable {
		out = append(out, e.Identity)
	}
	return out
}

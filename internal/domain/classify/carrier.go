package classify

// Carrier identities known to the operation.
const (
	CarrierNeutralNetworks = "NeutralNetworks"
	CarrierCogent          = "Cogent"
	CarrierTiSparkle       = "TiSparkle"
	CarrierF16             = "F16"
	CarrierFiberOptic      = "FiberOptic"
	CarrierOther           = "other"
)

// CarrierTable is the ordered carrier signature registry. El orden
// importa: la primera coincidencia gana.
var CarrierTable = []Entry{
	{Identity: CarrierNeutralNetworks, Signatures: []string{"neutral networks", "neutral", "nnet", "neutralnet"}},
	{Identity: CarrierCogent, Signatures: []string{"cogent", "cgnt"}},
	{Identity: CarrierTiSparkle, Signatures: []string{"ti-sparkle", "tisparkle", "sparkle", "seabone"}},
	{Identity: CarrierF16, Signatures: []string{"f16", "f-16"}},
	{Identity: CarrierFiberOptic, Signatures: []string{"fiberoptic", "fiber optic", "fibra optica", "fibra óptica", "fo-tr"}},
}

var carrierMatcher = NewMatcher(CarrierTable, CarrierOther)

// Carrier classifies a free-text descriptor as one of the known transit
// carriers, or "other" when nothing matches.
func Carrier(text string) string {
	return carrierMatcher.Match(text)
}

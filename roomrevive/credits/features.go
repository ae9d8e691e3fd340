package credits

// feature flags unlocked per tier
const (
	FeatureHDImages           = "hd-images"
	FeatureNoWatermark        = "no-watermark"
	FeatureSaveDesigns        = "save-designs"
	FeatureCompareOptions     = "compare-options"
	FeatureCommercialUse      = "commercial-use"
	FeaturePriorityProcessing = "priority-processing"
)

var paidFeatures = []string{FeatureHDImages, FeatureNoWatermark}

var proFeatures = []string{
	FeatureSaveDesigns,
	FeatureCompareOptions,
	FeatureCommercialUse,
	FeaturePriorityProcessing,
}

// free tier only gets the standard styles
func (t Tier) AllowsPremiumStyles() bool {
	return t == TierBasic || t == TierPro
}

func (t Tier) Features() []string {
	features := []string{}

	if t == TierBasic || t == TierPro {
		features = append(features, paidFeatures...)
	}

	if t == TierPro {
		features = append(features, proFeatures...)
	}

	return features
}

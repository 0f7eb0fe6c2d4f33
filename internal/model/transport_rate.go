package model

type TransportRate struct {
	Base
	Destination   string  `gorm:"size:255;not null;uniqueIndex" json:"destination"`
	RateUSDPerCBM float64 `gorm:"not null" json:"rateUsdPerCbm"`
}

package models

// DefaultGradient is stored for gradients left blank.
const DefaultGradient = "0%"

// RouteGradient describes how steep a guide or segment is. Elevation gain
// and loss are Distance records.
type RouteGradient struct {
	Record
	RouteGuideID         *string `gorm:"index;size:200" json:"route_guide_id,omitempty" ref:"route_guides,parent"`
	RouteGuideSegmentID  *string `gorm:"index;size:200" json:"route_guide_segment_id,omitempty" ref:"route_guide_segments,parent"`
	MaxGradient          string  `gorm:"size:10;not null;default:0%" json:"max_gradient" validate:"required,max=10"`
	AvgGradient          string  `gorm:"size:10;not null;default:0%" json:"avg_gradient" validate:"required,max=10"`
	TotalElevationGainID uint    `gorm:"index;not null" json:"total_elevation_gain_id" ref:"distances" validate:"required"`
	TotalElevationLossID uint    `gorm:"index;not null" json:"total_elevation_loss_id" ref:"distances" validate:"required"`
	GradientTerm         string  `gorm:"size:100;not null" json:"gradient_term" validate:"required,max=100"`
	GradientDefURL       string  `gorm:"column:gradient_defurl;size:200;not null" json:"gradient_defurl" validate:"required,weburl,max=200"`
	Description          string  `gorm:"size:250;not null" json:"description" validate:"required,max=250"`
}

func (RouteGradient) TableName() string { return "route_gradients" }

func (g *RouteGradient) ApplyDefaults() {
	if g.MaxGradient == "" {
		g.MaxGradient = DefaultGradient
	}
	if g.AvgGradient == "" {
		g.AvgGradient = DefaultGradient
	}
}

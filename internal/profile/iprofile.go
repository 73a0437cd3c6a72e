package profile

// IPE 200 as given in section tables (without root radius).
var IPE200 = IProfile{Name: "IPE 200", Height: 200, WebThickness: 5.6, FlangeWidth: 100, FlangeThickness: 8.5}

// WebHeight returns the clear web height h - 2tf.
func (p IProfile) WebHeight() float64 {
	return p.Height - 2*p.FlangeThickness
}

// Area returns the cross-section area (mm²)
func (p IProfile) Area() float64 {
	return 2*p.FlangeWidth*p.FlangeThickness + p.WebHeight()*p.WebThickness
}

// InertiaYY returns the strong axis second moment of area (mm⁴).
// Flanges contribute their own inertia plus the Steiner term.
func (p IProfile) InertiaYY() float64 {
	hw := p.WebHeight()
	web := p.WebThickness * hw * hw * hw / 12
	flange := p.FlangeWidth * p.FlangeThickness * p.FlangeThickness * p.FlangeThickness / 12
	arm := (hw + p.FlangeThickness) / 2
	steiner := p.FlangeWidth * p.FlangeThickness * arm * arm
	return web + 2*flange + 2*steiner
}

// InertiaZZ returns the weak axis second moment of area (mm⁴).
func (p IProfile) InertiaZZ() float64 {
	b := p.FlangeWidth
	return 2*p.FlangeThickness*b*b*b/12 + p.WebHeight()*p.WebThickness*p.WebThickness*p.WebThickness/12
}

// PlasticModulusYY returns the strong axis plastic section modulus (mm³).
func (p IProfile) PlasticModulusYY() float64 {
	hw := p.WebHeight()
	return p.FlangeWidth*p.FlangeThickness*(hw+p.FlangeThickness) + p.WebThickness*hw*hw/4
}

// Outline returns the profile outline centred on the origin, counter-clockwise
// from the bottom-left corner of the lower flange.
func (p IProfile) Outline() Polygon {
	b, h := p.FlangeWidth/2, p.Height/2
	w, f := p.WebThickness/2, p.FlangeThickness

	return Polygon{
		{-b, -h},
		{b, -h},
		{b, -h + f},
		{w, -h + f},
		{w, h - f},
		{b, h - f},
		{b, h},
		{-b, h},
		{-b, h - f},
		{-w, h - f},
		{-w, -h + f},
		{-b, -h + f},
	}
}

package threads

import "math"

// Algorithm selects the color distance formula used for thread matching.
type Algorithm string

const (
	AlgEuclidean Algorithm = "euclidean"
	AlgWeighted  Algorithm = "weighted"
	AlgCIE76     Algorithm = "cie76"
	AlgCIE94     Algorithm = "cie94"
	AlgCIEDE2000 Algorithm = "ciede2000"
)

// DefaultAlgorithm is CIEDE2000, the industry standard for color
// matching applications.
const DefaultAlgorithm = AlgCIEDE2000

// Lab is a color in the CIE L*a*b* space (D65 illuminant).
type Lab struct {
	L, A, B float64
}

// RGBToLab converts an sRGB triple to Lab (D65).
func RGBToLab(rgb [3]uint8) Lab {
	return xyzToLab(rgbToXYZ(rgb))
}

// rgbToXYZ converts sRGB to XYZ, gamma-corrected, scaled 0-100.
func rgbToXYZ(rgb [3]uint8) (x, y, z float64) {
	linear := func(c float64) float64 {
		c /= 255.0
		if c > 0.04045 {
			return math.Pow((c+0.055)/1.055, 2.4)
		}
		return c / 12.92
	}
	r := linear(float64(rgb[0])) * 100.0
	g := linear(float64(rgb[1])) * 100.0
	b := linear(float64(rgb[2])) * 100.0

	x = r*0.4124564 + g*0.3575761 + b*0.1804375
	y = r*0.2126729 + g*0.7151522 + b*0.0721750
	z = r*0.0193339 + g*0.1191920 + b*0.9503041
	return x, y, z
}

func xyzToLab(x, y, z float64) Lab {
	// D65 reference white.
	const refX, refY, refZ = 95.047, 100.000, 108.883
	const epsilon, kappa = 0.008856, 903.3

	f := func(t float64) float64 {
		if t > epsilon {
			return math.Cbrt(t)
		}
		return (kappa*t + 16.0) / 116.0
	}
	fx := f(x / refX)
	fy := f(y / refY)
	fz := f(z / refZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// EuclideanDistance is the plain distance in RGB space.
func EuclideanDistance(c1, c2 [3]uint8) float64 {
	dr := float64(c1[0]) - float64(c2[0])
	dg := float64(c1[1]) - float64(c2[1])
	db := float64(c1[2]) - float64(c2[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// WeightedRGBDistance weights channels by the red mean, a cheap
// approximation of human color perception.
func WeightedRGBDistance(c1, c2 [3]uint8) float64 {
	rmean := (float64(c1[0]) + float64(c2[0])) / 2.0
	dr := float64(c1[0]) - float64(c2[0])
	dg := float64(c1[1]) - float64(c2[1])
	db := float64(c1[2]) - float64(c2[2])

	wr := 2.0 + rmean/256.0
	wg := 4.0
	wb := 2.0 + (255.0-rmean)/256.0
	return math.Sqrt(wr*dr*dr + wg*dg*dg + wb*db*db)
}

// DeltaE76 is the Euclidean distance in Lab space.
func DeltaE76(c1, c2 [3]uint8) float64 {
	lab1 := RGBToLab(c1)
	lab2 := RGBToLab(c2)
	dl := lab1.L - lab2.L
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE94 is CIE94 with textile weighting factors.
func DeltaE94(c1, c2 [3]uint8) float64 {
	lab1 := RGBToLab(c1)
	lab2 := RGBToLab(c2)

	dl := lab1.L - lab2.L
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B

	chroma1 := math.Hypot(lab1.A, lab1.B)
	chroma2 := math.Hypot(lab2.A, lab2.B)
	dc := chroma1 - chroma2

	dh2 := da*da + db*db - dc*dc
	dh := 0.0
	if dh2 > 0 {
		dh = math.Sqrt(dh2)
	}

	// Textile weights.
	const kl, k1, k2 = 2.0, 0.048, 0.014
	sl := 1.0
	sc := 1.0 + k1*chroma1
	sh := 1.0 + k2*chroma1

	t1 := dl / (kl * sl)
	t2 := dc / sc
	t3 := dh / sh
	return math.Sqrt(t1*t1 + t2*t2 + t3*t3)
}

// DeltaE2000 is the CIEDE2000 color difference.
func DeltaE2000(c1, c2 [3]uint8) float64 {
	lab1 := RGBToLab(c1)
	lab2 := RGBToLab(c2)

	l1, a1, b1 := lab1.L, lab1.A, lab1.B
	l2, a2, b2 := lab2.L, lab2.A, lab2.B

	chroma1 := math.Hypot(a1, b1)
	chroma2 := math.Hypot(a2, b2)
	cAvg := (chroma1 + chroma2) / 2.0

	cAvg7 := math.Pow(cAvg, 7)
	g := 0.5 * (1.0 - math.Sqrt(cAvg7/(cAvg7+math.Pow(25.0, 7))))

	a1p := a1 * (1.0 + g)
	a2p := a2 * (1.0 + g)
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	h1p := degrees(math.Atan2(b1, a1p))
	h2p := degrees(math.Atan2(b2, a2p))
	if h1p < 0 {
		h1p += 360
	}
	if h2p < 0 {
		h2p += 360
	}

	dlP := l2 - l1
	dcP := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dhP := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2.0)

	lp := (l1 + l2) / 2.0
	cp := (c1p + c2p) / 2.0

	var hp float64
	switch {
	case c1p*c2p == 0:
		hp = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hp = (h1p + h2p) / 2.0
	case h1p+h2p < 360:
		hp = (h1p + h2p + 360) / 2.0
	default:
		hp = (h1p + h2p - 360) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(radians(hp-30.0)) +
		0.24*math.Cos(radians(2.0*hp)) +
		0.32*math.Cos(radians(3.0*hp+6.0)) -
		0.20*math.Cos(radians(4.0*hp-63.0))

	lpSq := (lp - 50.0) * (lp - 50.0)
	sl := 1.0 + (0.015*lpSq)/math.Sqrt(20.0+lpSq)
	sc := 1.0 + 0.045*cp
	sh := 1.0 + 0.015*cp*t

	dTheta := 30.0 * math.Exp(-((hp-275.0)/25.0)*((hp-275.0)/25.0))
	cp7 := math.Pow(cp, 7)
	rc := 2.0 * math.Sqrt(cp7/(cp7+math.Pow(25.0, 7)))
	rt := -rc * math.Sin(radians(2.0*dTheta))

	t1 := dlP / sl
	t2 := dcP / sc
	t3 := dhP / sh
	return math.Sqrt(t1*t1 + t2*t2 + t3*t3 + rt*t2*t3)
}

// Distance computes the color distance using the given algorithm.
func Distance(c1, c2 [3]uint8, alg Algorithm) float64 {
	switch alg {
	case AlgEuclidean:
		return EuclideanDistance(c1, c2)
	case AlgWeighted:
		return WeightedRGBDistance(c1, c2)
	case AlgCIE76:
		return DeltaE76(c1, c2)
	case AlgCIE94:
		return DeltaE94(c1, c2)
	default:
		return DeltaE2000(c1, c2)
	}
}

// Match is the result of finding the closest thread to a target color.
type Match struct {
	Thread   ThreadColor
	Distance float64
}

// FindClosest returns the thread in the palette closest to the target
// color under the given algorithm, or false for an empty palette.
func FindClosest(target [3]uint8, palette []ThreadColor, alg Algorithm) (Match, bool) {
	if len(palette) == 0 {
		return Match{}, false
	}
	best := Match{Distance: math.MaxFloat64}
	for _, t := range palette {
		d := Distance(target, t.RGB, alg)
		if d < best.Distance {
			best = Match{Thread: t, Distance: d}
		}
	}
	return best, true
}

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

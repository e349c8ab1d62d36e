// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ode

// tableau holds the Butcher tableau of an embedded explicit Runge-Kutta pair
//  y_(n+1) = y_(n) + Δt Σ b_i k_i
//  error   = Δt ‖Σ e_i k_i‖∞
type tableau struct {
	c    []float64   // nodes
	a    [][]float64 // lower triangular coefficients; a[i] has i entries
	b    []float64   // weights of the propagated solution
	e    []float64   // weights of the error estimate
	p    float64     // exponent of the step-size update
	fsal bool        // the last stage is f(t_(n+1), y_(n+1))
}

// bogackiShampine holds the 3(2) pair
var bogackiShampine = tableau{
	c: []float64{0, 0.5, 0.75, 1},
	a: [][]float64{
		{},
		{0.5},
		{0, 0.75},
		{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0},
	},
	b:    []float64{2.0 / 9.0, 1.0 / 3.0, 4.0 / 9.0, 0},
	e:    []float64{-5.0 / 72.0, 6.0 / 72.0, 8.0 / 72.0, -9.0 / 72.0},
	p:    3,
	fsal: true,
}

// dormandPrince holds the 5(4) pair
var dormandPrince = tableau{
	c: []float64{0, 0.2, 0.3, 0.8, 8.0 / 9.0, 1, 1},
	a: [][]float64{
		{},
		{0.2},
		{0.075, 0.225},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	},
	b:    []float64{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0, 0},
	e:    []float64{71.0 / 57600.0, 0, -71.0 / 16695.0, 71.0 / 1920.0, -17253.0 / 339200.0, 22.0 / 525.0, -1.0 / 40.0},
	p:    5,
	fsal: true,
}

// verner8 holds Verner's 8(7) pair
var verner8 = tableau{
	c: []float64{0, 0.05, 0.1065625, 0.15984375, 0.39, 0.465, 0.155, 0.943, 0.901802041735857, 0.909, 0.94, 1, 1},
	a: [][]float64{
		{},
		{0.05},
		{-0.0069931640625, 0.1135556640625},
		{0.0399609375, 0, 0.1198828125},
		{0.36139756280045754, 0, -1.3415240667004928, 1.3701265039000352},
		{0.049047202797202795, 0, 0, 0.23509720422144048, 0.18085559298135673},
		{0.06169289044289044, 0, 0, 0.11236568314640277, -0.03885046071451367, 0.01979188712522046},
		{-1.767630240222327, 0, 0, -62.5, -6.061889377376669, 5.6508231982227635, 65.62169641937624},
		{-1.1809450665549708, 0, 0, -41.50473441114321, -4.434438319103725, 4.260408188586133, 43.75364022446172, 0.00787142548991231},
		{-1.2814059994414884, 0, 0, -45.047139960139866, -4.731362069449576, 4.514967016593808, 47.44909557172985, 0.01059228297111661, -0.0057468422638446166},
		{-1.7244701342624853, 0, 0, -60.92349008483054, -5.951518376222392, 5.556523730698456, 63.98301198033305, 0.014642028250414961, 0.06460408772358203, -0.0793032316900888},
		{-3.301622667747079, 0, 0, -118.01127235975251, -10.141422388456112, 9.139311332232058, 123.37594282840426, 4.62324437887458, -3.3832777380682018, 4.527592100324618, -5.828495485811623},
		{-3.039515033766309, 0, 0, -109.26086808941763, -9.290642497400293, 8.43050498176491, 114.20100103783314, -0.9637271342145479, -5.0348840888021895, 5.958130824002923, 0, 0},
	},
	b: []float64{0.04427989419007951, 0, 0, 0, 0, 0.3541049391724449, 0.24796921549564377, -15.694202038838085, 25.084064965558564, -31.738367786260277, 22.938283273988784, -0.2361324633071542, 0},
	e: []float64{-3.272103901028138e-05, 0, 0, 0, 0, -0.0005046250618777704, 0.0001211723589784759, -20.142336771313868, 5.2371785994398286, -8.156744408794658, 22.938283273988784, -0.2361324633071542, 0.36016794372897754},
	p: 8,
}

// verner9 holds Verner's 9(8) pair
var verner9 = tableau{
	c: []float64{0, 0.03462, 0.09702435063878044, 0.14553652595817068, 0.561, 0.229007911590485, 0.544992088409515, 0.645, 0.48375, 0.06757, 0.25, 0.6590650618730999, 0.8206, 0.9012, 1, 1},
	a: [][]float64{
		{},
		{0.03462},
		{-0.03893354388572875, 0.13595789452450918},
		{0.03638413148954267, 0, 0.10915239446862801},
		{2.0257639143939694, 0, -7.638023836496291, 6.173259922102322},
		{0.05112275589406061, 0, 0, 0.17708237945550218, 0.0008027762409222536},
		{0.13160063579752163, 0, 0, -0.2957276252669636, 0.08781378035642955, 0.6213052975225274},
		{0.07166666666666667, 0, 0, 0, 0, 0.33055335789153195, 0.2427799754418014},
		{0.071806640625, 0, 0, 0, 0, 0.3294380283228177, 0.1165190029271823, -0.034013671875},
		{0.04836757646340646, 0, 0, 0, 0, 0.03928989925676164, 0.10547409458903446, -0.021438652846483126, -0.10412291746271944},
		{-0.026645614872014785, 0, 0, 0, 0, 0.03333333333333333, -0.1631072244872467, 0.03396081684127761, 0.1572319413814626, 0.21522674780318796},
		{0.03689009248708622, 0, 0, 0, 0, -0.1465181576725543, 0.2242577768172024, 0.02294405717066073, -0.0035850052905728597, 0.08669223316444385, 0.43838406519683376},
		{-0.4866012215113341, 0, 0, 0, 0, -6.304602650282853, -0.2812456182894729, -2.679019236219849, 0.5188156639241577, 1.3653531876033418, 5.8850910885039465, 2.8028087862720628},
		{0.4185367457753472, 0, 0, 0, 0, 6.724547581906459, -0.42544428016461133, 3.3432791530012653, 0.6170816631175374, -0.9299661239399329, -6.099948804751011, -3.002206187889399, 0.2553202529443446},
		{-0.7793740861228848, 0, 0, 0, 0, -13.937342538107776, 1.2520488533793563, -14.691500408016868, -0.494705058533141, 2.2429749091462368, 13.367893803828643, 14.396650486650687, -0.79758133317768, 0.4409353709534278},
		{2.0580513374668867, 0, 0, 0, 0, 22.357937727968032, 0.9094981099755646, 35.89110098240264, -3.442515027624454, -4.865481358036369, -18.909803813543427, -34.26354448030452, 1.2647565216956427, 0, 0},
	},
	b: []float64{0.014611976858423152, 0, 0, 0, 0, 0, 0, -0.3915211862331339, 0.23109325002895065, 0.12747667699928525, 0.2246434176204158, 0.5684352689748513, 0.058258715572158275, 0.13643174034822156, 0.030570139830827976, 0},
	e: []float64{-0.005357988290444578, 0, 0, 0, 0, 0, 0, -2.583020491182464, 0.14252253154686625, 0.013420653512688676, -0.02867296291409493, 2.624999655215792, -0.2825509643291537, 0.13643174034822156, 0.030570139830827976, -0.04834231373823958},
	p: 9,
}

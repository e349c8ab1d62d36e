// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/gofem/mech/ten"
)

// Stress measures
//
//   P = J σ F⁻ᵀ         σ = J⁻¹ P Fᵀ
//   S = F⁻¹ P           P = F S
//   S = J F⁻¹ σ F⁻ᵀ     σ = J⁻¹ F S Fᵀ
//
// All functions check J = det(F) > 0 and return InvalidJacobian otherwise.

// Jacobian returns J = det(F) > 0
func Jacobian(F ten.T2) (float64, error) {
	return jacobian(F)
}

// FirstPKFromCauchy returns P = J σ F⁻ᵀ
func FirstPKFromCauchy(F, σ ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	return σ.Dot(F.InvT()).Scale(J), nil
}

// CauchyFromFirstPK returns σ = J⁻¹ P Fᵀ
func CauchyFromFirstPK(F, P ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	return P.Dot(F.Transpose()).Scale(1.0 / J), nil
}

// SecondPKFromFirstPK returns S = F⁻¹ P
func SecondPKFromFirstPK(F, P ten.T2) (ten.T2, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T2{}, err
	}
	return F.Inv().Dot(P), nil
}

// FirstPKFromSecondPK returns P = F S
func FirstPKFromSecondPK(F, S ten.T2) (ten.T2, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T2{}, err
	}
	return F.Dot(S), nil
}

// SecondPKFromCauchy returns S = J F⁻¹ σ F⁻ᵀ
func SecondPKFromCauchy(F, σ ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	Fi := F.Inv()
	return Fi.Dot(σ).Dot(Fi.Transpose()).Scale(J), nil
}

// CauchyFromSecondPK returns σ = J⁻¹ F S Fᵀ
func CauchyFromSecondPK(F, S ten.T2) (ten.T2, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T2{}, err
	}
	return F.Dot(S).Dot(F.Transpose()).Scale(1.0 / J), nil
}

// Tangents (derivatives with respect to F; the variation of J and F⁻¹ is included)
//
//   C_iJkL = J T_iskL F⁻ᵀ_sJ + P_iJ F⁻ᵀ_kL - P_iL F⁻ᵀ_kJ
//   G_IJkL = J F⁻ᵀ_mI T_mnkL F⁻ᵀ_nJ + S_IJ F⁻ᵀ_kL - S_IL F⁻ᵀ_kJ - S_LJ F⁻ᵀ_kI
//   T_ijkL = J⁻¹ F_iM G_MNkL F_jN - σ_ij F⁻ᵀ_kL + (δ_jk σ_is + δ_ik σ_js) F⁻ᵀ_sL
//   C_iJkL = δ_ik S_LJ + F_iM G_MJkL

// FirstPKTangentFromCauchy returns C = ∂P/∂F given σ and T = ∂σ/∂F
func FirstPKTangentFromCauchy(F, σ ten.T2, T ten.T4) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	Fi := F.Inv()
	Fit := Fi.Transpose()
	P := σ.Dot(Fit).Scale(J)
	C := sandwich(ten.I2(), T, Fit).Scale(J)
	C = C.Add(ten.DyadIJKL(P, Fit))
	C = C.Sub(ten.DyadILJK(P, Fi))
	return C, nil
}

// SecondPKTangentFromCauchy returns G = ∂S/∂F given σ and T = ∂σ/∂F
func SecondPKTangentFromCauchy(F, σ ten.T2, T ten.T4) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	Fi := F.Inv()
	Fit := Fi.Transpose()
	S := Fi.Dot(σ).Dot(Fit).Scale(J)
	G := sandwich(Fi, T, Fit).Scale(J)
	G = G.Add(ten.DyadIJKL(S, Fit))
	G = G.Sub(ten.DyadILJK(S, Fi))
	G = G.Sub(ten.DyadIKJL(Fi, S.Transpose()))
	return G, nil
}

// CauchyTangentFromSecondPK returns T = ∂σ/∂F given S and G = ∂S/∂F
func CauchyTangentFromSecondPK(F, S ten.T2, G ten.T4) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	Fit := F.InvT()
	σ := F.Dot(S).Dot(F.Transpose()).Scale(1.0 / J)
	σFit := σ.Dot(Fit)
	I := ten.I2()
	T := sandwich(F, G, F.Transpose()).Scale(1.0 / J)
	T = T.Sub(ten.DyadIJKL(σ, Fit))
	T = T.Add(ten.DyadILJK(σFit, I))
	T = T.Add(ten.DyadIKJL(I, σFit))
	return T, nil
}

// FirstPKTangentFromSecondPK returns C = ∂P/∂F given S and G = ∂S/∂F
func FirstPKTangentFromSecondPK(F, S ten.T2, G ten.T4) (ten.T4, error) {
	if _, err := jacobian(F); err != nil {
		return ten.T4{}, err
	}
	C := sandwich(F, G, ten.I2())
	C = C.Add(ten.DyadIKJL(ten.I2(), S.Transpose()))
	return C, nil
}

// Rate tangents (derivatives with respect to Ḟ at fixed F)
//
//   U_iJkL = J V_iskL F⁻ᵀ_sJ
//   W_IJkL = J F⁻ᵀ_mI V_mnkL F⁻ᵀ_nJ
//   V_ijkL = J⁻¹ F_iM W_MNkL F_jN

// FirstPKRateTangentFromCauchy returns U = ∂P/∂Ḟ given V = ∂σ/∂Ḟ
func FirstPKRateTangentFromCauchy(F ten.T2, V ten.T4) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	return sandwich(ten.I2(), V, F.InvT()).Scale(J), nil
}

// SecondPKRateTangentFromCauchy returns W = ∂S/∂Ḟ given V = ∂σ/∂Ḟ
func SecondPKRateTangentFromCauchy(F ten.T2, V ten.T4) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	Fi := F.Inv()
	return sandwich(Fi, V, Fi.Transpose()).Scale(J), nil
}

// CauchyRateTangentFromSecondPK returns V = ∂σ/∂Ḟ given W = ∂S/∂Ḟ
func CauchyRateTangentFromSecondPK(F ten.T2, W ten.T4) (ten.T4, error) {
	J, err := jacobian(F)
	if err != nil {
		return ten.T4{}, err
	}
	return sandwich(F, W, F.Transpose()).Scale(1.0 / J), nil
}

// sandwich returns R_ijkl = a_im t_mnkl b_nj
func sandwich(a ten.T2, t ten.T4, b ten.T2) (r ten.T4) {
	var tmp ten.T4
	for m := 0; m < 3; m++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					for n := 0; n < 3; n++ {
						tmp[m][j][k][l] += t[m][n][k][l] * b[n][j]
					}
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					for m := 0; m < 3; m++ {
						r[i][j][k][l] += a[i][m] * tmp[m][j][k][l]
					}
				}
			}
		}
	}
	return
}

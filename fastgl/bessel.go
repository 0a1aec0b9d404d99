// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.gonum file.

package fastgl

import "math"

// Adapted from gonum.org/v1/gonum/integrate/quad, itself adapted from
// http://sourceforge.net/projects/fastgausslegendrequadrature.

// Original Copyright Notice:
//*******************************************
//   Copyright (C) 2014 by Ignace Bogaert   *
//*******************************************

// Disclaimer:
// THIS SOFTWARE IS PROVIDED "AS IS" AND ANY EXPRESSED OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
// WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE REGENTS OR
// CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
// HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR
// OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// besselJ0Zeros holds the first zeros j_{0,k} of the Bessel function J0.
var besselJ0Zeros = [...]float64{
	2.40482555769577276862163187933, 5.52007811028631064959660411281,
	8.65372791291101221695419871266, 11.7915344390142816137430449119,
	14.9309177084877859477625939974, 18.0710639679109225431478829756,
	21.2116366298792589590783933505, 24.3524715307493027370579447632,
	27.4934791320402547958772882346, 30.6346064684319751175495789269,
	33.7758202135735686842385463467, 36.9170983536640439797694930633,
	40.0584257646282392947993073740, 43.1997917131767303575240727287,
	46.3411883716618140186857888791, 49.4826098973978171736027615332,
	52.6240518411149960292512853804, 55.7655107550199793116834927735,
	58.9069839260809421328344066346, 62.0484691902271698828525002646,
}

// besselJ1SquaredAtZeros holds J1(j_{0,k})^2 for the first zeros of J0.
var besselJ1SquaredAtZeros = [...]float64{
	0.269514123941916926139021992911, 0.115780138582203695807812836182,
	0.0736863511364082151406476811985, 0.0540375731981162820417749182758,
	0.0426614290172430912655106063495, 0.0352421034909961013587473033648,
	0.0300210701030546726750888157688, 0.0261473914953080885904584675399,
	0.0231591218246913922652676382178, 0.0207838291222678576039808057297,
	0.0188504506693176678161056800214, 0.0172461575696650082995240053542,
	0.0158935181059235978027065594287, 0.0147376260964721895895742982592,
	0.0137384651453871179182880484134, 0.0128661817376151328791406637228,
	0.0120980515486267975471075438497, 0.0114164712244916085168627222986,
	0.0108075927911802040115547286830, 0.0102603729262807628110423992790,
	0.00976589713979105054059846736696,
}

// BesselJ0Zero returns the k-th positive zero of J0, k >= 1.
func BesselJ0Zero(k int) (z float64) {
	if k <= len(besselJ0Zeros) {
		return besselJ0Zeros[k-1]
	}
	// McMahon expansion in 1/(π(k-1/4))
	z = math.Pi * (float64(k) - 0.25)
	r := 1. / z
	r2 := r * r
	z += r * (0.125 + r2*(-0.807291666666666666666666666667e-1+r2*(0.246028645833333333333333333333+
		r2*(-1.82443876720610119047619047619+r2*(25.3364147973439050099206349206+
			r2*(-567.644412135183381139802038240+r2*(18690.4765282320653831636345064+
				r2*(-8.49353580299148769921876983660e5+5.09225462402226769498681286758e7*r2))))))))
	return
}

// BesselJ1SquaredAtZero returns J1(j_{0,k})^2, k >= 1.
func BesselJ1SquaredAtZero(k int) float64 {
	if k <= len(besselJ1SquaredAtZeros) {
		return besselJ1SquaredAtZeros[k-1]
	}
	x := 1. / (float64(k) - 0.25)
	x2 := x * x
	return x * (0.202642367284675542887758926420 + x2*x2*(-0.303380429711290253026202643516e-3+
		x2*(0.198924364245969295201137972743e-3+x2*(-0.228969902772111653038747229723e-3+
			x2*(0.433710719130746277915572905025e-3+x2*(-0.123632349727175414724737657367e-2+
				x2*(0.496101423268883102872271417616e-2+x2*(-0.266837393702323757700998557826e-1+
					0.185395398206345628711318848386*x2))))))))
}

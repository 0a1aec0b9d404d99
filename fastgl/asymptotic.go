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

// asymptoticPair evaluates Bogaert's expansion for k <= (n+1)/2. The Bessel
// zero gives the bootstrap angle theta0 = j_{0,k}/(n+1/2); a single closed
// form correction in powers of 1/(n+1/2)^2 then yields theta and the weight
// to within a few ulps for n > MaxRecurrenceOrder.
func asymptoticPair(n, k int) (nw NodeWeight) {
	var (
		w     = 1. / (float64(n) + 0.5)
		nu    = BesselJ0Zero(k)
		theta = w * nu
		x     = theta * theta
		b     = BesselJ1SquaredAtZero(k)
	)
	// Chebyshev interpolants of the node expansion coefficients in theta^2
	sf1t := (((((-1.29052996274280508473467968379e-12*x+2.40724685864330121825976175184e-10)*x-
		3.13148654635992041468855740012e-8)*x+0.275573168962061235623801563453e-5)*x-
		0.148809523713909147898955880165e-3)*x+0.416666666665193394525296923981e-2)*x -
		0.416666666666662959639712457549e-1
	sf2t := (((((+2.20639421781871003734786884322e-9*x-7.53036771373769326811030753538e-8)*x+
		0.161969259453836261731700382098e-5)*x-0.253300326008232025914059965302e-4)*x+
		0.282116886057560434805998583817e-3)*x-0.209022248387852902722635654229e-2)*x +
		0.815972221772932265640401128517e-2
	sf3t := (((((-2.97058225375526229899781956673e-8*x+5.55845330223796209655886325712e-7)*x-
		0.567797841356833081642185432056e-5)*x+0.418498100329504574443885193835e-4)*x-
		0.251395293283965914823026348764e-3)*x+0.128654198542845137196151147483e-2)*x -
		0.416012165620204364833694266818e-2

	// and of the weight expansion coefficients
	wsf1t := ((((((((-2.20902861044616638398573427475e-14*x+2.30365726860377376873232578871e-12)*x-
		1.75257700735423807659851042318e-10)*x+1.03756066927916795821098009353e-8)*x-
		4.63968647553221331251529631098e-7)*x+0.149644593625028648361395938176e-4)*x-
		0.326278659594412170300449074873e-3)*x+0.436507936507598105249726413120e-2)*x-
		0.305555555555553028279487898503e-1)*x + 0.833333333333333302184063103900e-1
	wsf2t := (((((((+3.63117412152654783455929483029e-12*x+7.67643545069893130779501844323e-11)*x-
		7.12912857233642220650643150625e-9)*x+2.11483880685947151466370130277e-7)*x-
		0.381817918680045468483009307090e-5)*x+0.465969530694968391417927388162e-4)*x-
		0.407297185611335764191683161117e-3)*x+0.268959435694729660779984493795e-2)*x -
		0.111111111111214923138249347172e-1
	wsf3t := (((((((+2.01826791256703301806643264922e-9*x-4.38647122520206649251063212545e-8)*x+
		5.08898347288671653137451093208e-7)*x-0.397933316519135275712977531366e-5)*x+
		0.200559326396458326778521795392e-4)*x-0.422888059282921161626339411388e-4)*x-
		0.105646050254076140548678457002e-3)*x-0.947969308958577323145923317955e-4)*x +
		0.656966489926484797412985260842e-2

	var (
		nuOverSin   = nu / math.Sin(theta)
		bNuOverSin  = b * nuOverSin
		wInvSinc    = w * w * nuOverSin
		wInvSincSq  = wInvSinc * wInvSinc
		denominator float64
	)
	nw.Theta = w * (nu + theta*wInvSinc*(sf1t+wInvSincSq*(sf2t+wInvSincSq*sf3t)))
	denominator = bNuOverSin + bNuOverSin*wInvSincSq*(wsf1t+wInvSincSq*(wsf2t+wInvSincSq*wsf3t))
	nw.Weight = 2. * w / denominator
	return
}

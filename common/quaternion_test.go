package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func TestQuaternionFromPitchYawComponents(t *testing.T) {
	p, y := float32(0.7), float32(-1.3)
	q := QuaternionFromPitchYaw(p, y)

	cp, sp := math.Cos(float64(p)/2), math.Sin(float64(p)/2)
	cy, sy := math.Cos(float64(y)/2), math.Sin(float64(y)/2)
	want := NewQuaternion(float32(cp*cy), float32(sp*cy), float32(cp*sy), float32(sp*sy))

	if !q.ApproxEqual(want, eps) {
		t.Fatalf("got %+v, want %+v", q, want)
	}
	if !approx(q.LenSqr(), 1) {
		t.Fatalf("expected unit quaternion, |q|^2 = %v", q.LenSqr())
	}
}

func TestQuaternionFromPitchYawIsPitchTimesYaw(t *testing.T) {
	p, y := float32(0.4), float32(2.1)
	got := QuaternionFromPitchYaw(p, y)
	want := QuaternionFromAxisAngle(mgl32.Vec3{1, 0, 0}, p).Mul(QuaternionFromAxisAngle(mgl32.Vec3{0, 1, 0}, y))
	if !got.ApproxEqual(want, eps) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSlerpIdenticalReturnsInput(t *testing.T) {
	qs := []Quaternion{
		IdentityQuaternion(),
		QuaternionFromPitchYaw(0.3, 1.2),
		QuaternionFromPitchYaw(-1.5, -3.0),
		QuaternionFromAxisAngle(mgl32.Vec3{1, 1, 0}, 2.5),
	}
	for _, q := range qs {
		for _, tt := range []float32{0, 0.2, 0.5, 1} {
			if got := Slerp(q, q, tt); !got.ApproxEqual(q, eps) {
				t.Errorf("Slerp(q, q, %v) = %+v, want %+v", tt, got, q)
			}
		}
	}
}

func TestSlerpBoundaries(t *testing.T) {
	q1 := QuaternionFromPitchYaw(0.2, 0.1)
	q2 := QuaternionFromPitchYaw(-0.6, 1.4)

	if got := Slerp(q1, q2, 0); !got.ApproxEqual(q1, eps) {
		t.Errorf("t=0: got %+v, want %+v", got, q1)
	}
	if got := Slerp(q1, q2, 1); !got.ApproxEqual(q2, eps) {
		t.Errorf("t=1: got %+v, want %+v", got, q2)
	}
}

func TestSlerpTakesShortArc(t *testing.T) {
	q1 := QuaternionFromAxisAngle(mgl32.Vec3{0, 1, 0}, 0.2)
	q2 := QuaternionFromAxisAngle(mgl32.Vec3{0, 1, 0}, 1.0).Negate()

	got := Slerp(q1, q2, 0.5)
	want := QuaternionFromAxisAngle(mgl32.Vec3{0, 1, 0}, 0.6)
	if !got.ApproxEqual(want, eps) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// t=1 lands on the negated target, which is the same rotation
	end := Slerp(q1, q2, 1)
	if !end.ApproxEqual(q2.Negate(), eps) {
		t.Fatalf("got %+v, want %+v", end, q2.Negate())
	}
}

func TestSlerpMidpointStaysUnit(t *testing.T) {
	q1 := QuaternionFromPitchYaw(0.9, -0.4)
	q2 := QuaternionFromPitchYaw(-0.3, 2.2)
	for _, tt := range []float32{0.1, 0.2, 0.5, 0.8} {
		if n := Slerp(q1, q2, tt).LenSqr(); !approx(n, 1) {
			t.Errorf("t=%v: |q|^2 = %v", tt, n)
		}
	}
}

func TestQuaternionMat3MatchesAxisAngle(t *testing.T) {
	axis := mgl32.Vec3{0.3, -0.5, 0.8}.Normalize()
	angle := float32(1.1)
	got := QuaternionFromAxisAngle(axis, angle).Mat4()
	want := mgl32.HomogRotate3D(angle, axis)
	for i := range got {
		if !approx(got[i], want[i]) {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuaternionMat3ToleratesScale(t *testing.T) {
	q := QuaternionFromPitchYaw(0.5, 0.25)
	scaled := q.Scale(1.01)
	a, b := q.Mat3(), scaled.Mat3()
	for i := range a {
		if !approx(a[i], b[i]) {
			t.Fatalf("element %d: unit %v, scaled %v", i, a[i], b[i])
		}
	}
}

func TestQuaternionRotate(t *testing.T) {
	q := QuaternionFromAxisAngle(mgl32.Vec3{0, 1, 0}, math.Pi/2)
	got := q.Rotate(mgl32.Vec3{1, 0, 0})
	if !approxVec(got, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("got %v, want (0, 0, -1)", got)
	}

	inv := q.Conjugate().Rotate(got)
	if !approxVec(inv, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("conjugate rotate: got %v", inv)
	}
}

func TestQuaternionAxisAngleRoundTrip(t *testing.T) {
	axis := mgl32.Vec3{1, 2, 2}.Normalize()
	gotAxis, gotAngle := QuaternionFromAxisAngle(axis, 0.75).AxisAngle()
	if !approxVec(gotAxis, axis) || !approx(gotAngle, 0.75) {
		t.Fatalf("got axis %v angle %v", gotAxis, gotAngle)
	}

	idAxis, idAngle := IdentityQuaternion().AxisAngle()
	if idAngle != 0 || !approxVec(idAxis, WorldUp) {
		t.Fatalf("identity: got axis %v angle %v", idAxis, idAngle)
	}
}

func TestQuaternionNormalizeZero(t *testing.T) {
	if got := (Quaternion{}).Normalize(); got != IdentityQuaternion() {
		t.Fatalf("got %+v", got)
	}
}

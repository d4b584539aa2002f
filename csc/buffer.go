// SPDX-License-Identifier: MIT

package csc

// IntBuffer is a growable int array reused across calls as caller-owned scratch.
// Contents outside the region a kernel documents as live are undefined.
type IntBuffer struct {
	Data []int
}

// FloatBuffer is the float64 counterpart of IntBuffer.
type FloatBuffer struct {
	Data []float64
}

// Reshape makes Data at least n long. Growth discards old contents.
func (b *IntBuffer) Reshape(n int) {
	if cap(b.Data) < n {
		b.Data = make([]int, n)

		return
	}
	b.Data = b.Data[:n]
}

// Reshape makes Data at least n long. Growth discards old contents.
func (b *FloatBuffer) Reshape(n int) {
	if cap(b.Data) < n {
		b.Data = make([]float64, n)

		return
	}
	b.Data = b.Data[:n]
}

// Adjust returns an int array of length n backed by buf. A nil buf yields a
// fresh allocation that the caller does not keep.
func Adjust(buf *IntBuffer, n int) []int {
	if buf == nil {
		return make([]int, n)
	}
	buf.Reshape(n)

	return buf.Data
}

// AdjustZeroed is Adjust followed by zeroing the first zeroTo entries.
func AdjustZeroed(buf *IntBuffer, n, zeroTo int) []int {
	w := Adjust(buf, n)
	clear(w[:zeroTo])

	return w
}

// AdjustFloat returns a float64 array of length n backed by buf.
func AdjustFloat(buf *FloatBuffer, n int) []float64 {
	if buf == nil {
		return make([]float64, n)
	}
	buf.Reshape(n)

	return buf.Data
}

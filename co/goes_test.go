// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoes(t *testing.T) {
	var g Goes
	var n int32
	for range 10 {
		g.Go(func() { atomic.AddInt32(&n, 1) })
	}
	g.Wait()
	assert.Equal(t, int32(10), atomic.LoadInt32(&n))
}

func TestGoesDone(t *testing.T) {
	var g Goes
	g.Go(func() {})
	<-g.Done()
}

func TestSignalBroadcast(t *testing.T) {
	var sig Signal
	w := sig.NewWaiter()
	sig.Broadcast()
	_, ok := <-w.C()
	assert.False(t, ok, "broadcast closes the waiter channel")
}

func TestSignalSignal(t *testing.T) {
	var sig Signal
	w := sig.NewWaiter()
	sig.Signal()
	v, ok := <-w.C()
	assert.True(t, ok)
	assert.True(t, v)
}

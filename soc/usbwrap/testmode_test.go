package usbwrap

import "testing"

func TestEnableTestMode(t *testing.T) {
	r := new(Registers)
	r.EnableTestMode(true)
	if r.testConf.LoadBits(TestEnable) == 0 {
		t.Error("test mode not enabled")
	}
	r.EnableTestMode(false)
	if r.testConf.LoadBits(TestEnable) != 0 {
		t.Error("test mode still enabled")
	}
}

func TestSetTestSignals(t *testing.T) {
	r := new(Registers)
	r.EnableTestMode(true)

	for _, c := range []struct {
		oe, txDp, txDm, rxDp, rxDm, rxRcv bool
		want                              TestConf
	}{
		{true, true, true, true, true, true, TestOE | TestTxDp | TestTxDm | TestRxDp | TestRxDm | TestRxRcv},
		{false, false, false, false, false, false, 0},
		{false, true, false, true, false, true, TestTxDp | TestRxDp | TestRxRcv},
		{true, false, true, false, true, false, TestOE | TestTxDm | TestRxDm},
	} {
		r.SetTestSignals(c.oe, c.txDp, c.txDm, c.rxDp, c.rxDm, c.rxRcv)
		// A single read after the call must reflect all six lines at
		// once.
		conf := r.testConf.Load()
		if conf&^TestEnable != c.want {
			t.Errorf("test_conf = %#x, want %#x", uint32(conf&^TestEnable), uint32(c.want))
		}
		if conf&TestEnable == 0 {
			t.Error("test mode enable was clobbered")
		}
	}
}

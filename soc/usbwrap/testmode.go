package usbwrap

// EnableTestMode puts the PHY into test mode, where the six PHY facing
// signal lines are driven and observed from the test configuration register
// instead of the transceiver datapath.
func (r *Registers) EnableTestMode(enable bool) {
	conf := r.testConf.Load()
	r.testConf.Store(conf.with(TestEnable, enable))
}

// SetTestSignals drives the PHY's signal lines while in test mode. oe is the
// output enable, which is active low.
//
// All six lines are staged in a local copy of the register and written back
// with a single store. Updating them one by one would make the bus go
// through arbitrary intermediate signal states.
func (r *Registers) SetTestSignals(oe, txDp, txDm, rxDp, rxDm, rxRcv bool) {
	conf := r.testConf.Load().
		with(TestOE, oe).
		with(TestTxDp, txDp).
		with(TestTxDm, txDm).
		with(TestRxDp, rxDp).
		with(TestRxDm, rxDm).
		with(TestRxRcv, rxRcv)
	r.testConf.Store(conf)
}

// This file is part of Ready.
//
// Ready is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ready is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ready.  If not, see <https://www.gnu.org/licenses/>.

package via

// State is the complete state of a VIA, as required by the snapshot package.
type State struct {
	ORA  uint8
	ORB  uint8
	DDRA uint8
	DDRB uint8
	IRA  uint8
	IRB  uint8

	T1       uint16
	T1Latch  uint16
	T1Armed  bool
	T1Reload bool
	T1Skip   bool
	PB7      bool

	T2        uint16
	T2LatchLo uint8
	T2Armed   bool
	T2Skip    bool
	PB6       bool

	SR      uint8
	SRCount int

	ACR uint8
	PCR uint8
	IFR uint8
	IER uint8

	CA1, CA2, CB1, CB2 bool
	CA2Out, CB2Out     bool
	CA2Pulse, CB2Pulse bool
}

// State returns the current state of the VIA.
func (via *VIA) State() State {
	return State{
		ORA:       via.ora,
		ORB:       via.orb,
		DDRA:      via.ddra,
		DDRB:      via.ddrb,
		IRA:       via.ira,
		IRB:       via.irb,
		T1:        via.t1,
		T1Latch:   via.t1latch,
		T1Armed:   via.t1armed,
		T1Reload:  via.t1reload,
		T1Skip:    via.t1skip,
		PB7:       via.pb7,
		T2:        via.t2,
		T2LatchLo: via.t2latchLo,
		T2Armed:   via.t2armed,
		T2Skip:    via.t2skip,
		PB6:       via.pb6,
		SR:        via.sr,
		SRCount:   via.srCount,
		ACR:       via.acr,
		PCR:       via.pcr,
		IFR:       via.ifr,
		IER:       via.ier,
		CA1:       via.ca1,
		CA2:       via.ca2,
		CB1:       via.cb1,
		CB2:       via.cb2,
		CA2Out:    via.ca2Out,
		CB2Out:    via.cb2Out,
		CA2Pulse:  via.ca2Pulse,
		CB2Pulse:  via.cb2Pulse,
	}
}

// SetState restores the VIA to a previously saved state.
func (via *VIA) SetState(s State) {
	via.ora = s.ORA
	via.orb = s.ORB
	via.ddra = s.DDRA
	via.ddrb = s.DDRB
	via.ira = s.IRA
	via.irb = s.IRB
	via.t1 = s.T1
	via.t1latch = s.T1Latch
	via.t1armed = s.T1Armed
	via.t1reload = s.T1Reload
	via.t1skip = s.T1Skip
	via.pb7 = s.PB7
	via.t2 = s.T2
	via.t2latchLo = s.T2LatchLo
	via.t2armed = s.T2Armed
	via.t2skip = s.T2Skip
	via.pb6 = s.PB6
	via.sr = s.SR
	via.srCount = s.SRCount
	via.acr = s.ACR
	via.pcr = s.PCR
	via.ifr = s.IFR
	via.ier = s.IER
	via.ca1 = s.CA1
	via.ca2 = s.CA2
	via.cb1 = s.CB1
	via.cb2 = s.CB2
	via.ca2Out = s.CA2Out
	via.cb2Out = s.CB2Out
	via.ca2Pulse = s.CA2Pulse
	via.cb2Pulse = s.CB2Pulse
	via.notify(PA)
	via.notify(PB)
}

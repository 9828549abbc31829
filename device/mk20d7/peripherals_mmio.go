//go:build nxp && mk20d7

package mk20d7

import "unsafe"

func blocks() (gpio [5]*GPIO_Type, port [5]*PORT_Type, sim *SIM_Type) {
	gpio = [5]*GPIO_Type{
		(*GPIO_Type)(unsafe.Pointer(uintptr(PTA_BASE))),
		(*GPIO_Type)(unsafe.Pointer(uintptr(PTB_BASE))),
		(*GPIO_Type)(unsafe.Pointer(uintptr(PTC_BASE))),
		(*GPIO_Type)(unsafe.Pointer(uintptr(PTD_BASE))),
		(*GPIO_Type)(unsafe.Pointer(uintptr(PTE_BASE))),
	}
	port = [5]*PORT_Type{
		(*PORT_Type)(unsafe.Pointer(uintptr(PORTA_BASE))),
		(*PORT_Type)(unsafe.Pointer(uintptr(PORTB_BASE))),
		(*PORT_Type)(unsafe.Pointer(uintptr(PORTC_BASE))),
		(*PORT_Type)(unsafe.Pointer(uintptr(PORTD_BASE))),
		(*PORT_Type)(unsafe.Pointer(uintptr(PORTE_BASE))),
	}
	sim = (*SIM_Type)(unsafe.Pointer(uintptr(SIM_BASE)))
	return
}

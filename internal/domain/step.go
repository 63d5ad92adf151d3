package domain

// Step is one state of the linear booking wizard. Step 6 is the
// confirmation screen; the wizard UI only drives steps 1 through 5.
type Step int

const (
	StepVehicle Step = iota + 1
	StepPaymentMileage
	StepProtection
	StepOptions
	StepDriverPayment
	StepConfirmation
)

// MinStep and MaxStep bound the wizard state machine.
const (
	MinStep = StepVehicle
	MaxStep = StepConfirmation
)

// IsValid returns true if the step is within the wizard range.
func (s Step) IsValid() bool {
	return s >= MinStep && s <= MaxStep
}

// String returns a short name for the step.
func (s Step) String() string {
	switch s {
	case StepVehicle:
		return "vehicle"
	case StepPaymentMileage:
		return "payment_mileage"
	case StepProtection:
		return "protection"
	case StepOptions:
		return "options"
	case StepDriverPayment:
		return "driver_payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

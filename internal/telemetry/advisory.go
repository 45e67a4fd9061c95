package telemetry

// MaintenanceLevel grades how soon a device needs attention.
type MaintenanceLevel string

const (
	LevelNormal  MaintenanceLevel = "normal"
	LevelWarning MaintenanceLevel = "warning"
	LevelUrgent  MaintenanceLevel = "urgent"
)

// urgentSeverity is the severity from which a fault is urgent.
const urgentSeverity = 60

// Advisory is the maintenance recommendation for one device.
type Advisory struct {
	Level            MaintenanceLevel `json:"level"`
	Suggestion       string           `json:"suggestion"`
	PredictedFailure string           `json:"predicted_failure"`
}

type adviceText struct {
	suggestion, predicted string
}

var warningAdvice = map[FaultCategory]adviceText{
	FaultNoCooling: {
		"Cooling output is degrading and consumption is up 30-60%; inspect the refrigeration circuit.",
		"Cooling may deteriorate further.",
	},
	FaultPowerOverload: {
		"Power draw is abnormal and consumption is up 50-100%; inspect wiring and the compressor.",
		"Overload may damage the unit.",
	},
	FaultTemperatureAbnormal: {
		"Temperature control is unstable and consumption is up 20-50%; inspect the thermostat.",
		"Temperature control may fail.",
	},
	FaultOperationAbnormal: {
		"Operation is irregular and consumption is up 25-55%; review the running state.",
		"Irregular operation may worsen.",
	},
}

var urgentAdvice = map[FaultCategory]adviceText{
	FaultNoCooling: {
		"Unit cannot cool and consumption is abnormally high; repair the refrigeration system now to avoid further damage.",
		"Cooling may fail completely and the unit may overheat.",
	},
	FaultPowerOverload: {
		"Severe power overload; cut power and repair immediately to prevent damage or a safety incident.",
		"Overload may burn out the unit or start a fire.",
	},
	FaultTemperatureAbnormal: {
		"Temperature control is severely abnormal; check the control system and sensors immediately.",
		"Control failure may damage the unit or the room environment.",
	},
	FaultOperationAbnormal: {
		"Operation is severely abnormal; stop the unit and repair it immediately.",
		"The unit may fail completely.",
	},
}

var (
	normalAdvice         = adviceText{"Device is running normally; keep the routine inspection schedule.", "No failure risk."}
	genericWarningAdvice = adviceText{"Minor anomaly detected; schedule an inspection soon.", "Running state needs attention."}
	genericUrgentAdvice  = adviceText{"High failure risk; repair immediately.", "The fault may worsen."}
)

// Advise maps a fault to its maintenance advisory. It is a pure lookup.
func Advise(category FaultCategory, severity int) Advisory {
	if !category.Faulty() {
		return Advisory{Level: LevelNormal, Suggestion: normalAdvice.suggestion, PredictedFailure: normalAdvice.predicted}
	}
	level, table, fallback := LevelWarning, warningAdvice, genericWarningAdvice
	if severity >= urgentSeverity {
		level, table, fallback = LevelUrgent, urgentAdvice, genericUrgentAdvice
	}
	text, ok := table[category]
	if !ok {
		text = fallback
	}
	return Advisory{Level: level, Suggestion: text.suggestion, PredictedFailure: text.predicted}
}

package params

// Request carries the raw song parameters exactly as clients send them.
// Every field is a string so malformed input is reported per parameter.
type Request struct {
	Key          string `json:"key" yaml:"key" form:"key"`
	Tempo        string `json:"tempo" yaml:"tempo" form:"tempo"`
	TimeSig      string `json:"timeSig" yaml:"timeSig" form:"timeSig"`
	OctaveLow    string `json:"octaveLow" yaml:"octaveLow" form:"octaveLow"`
	OctaveHigh   string `json:"octaveHigh" yaml:"octaveHigh" form:"octaveHigh"`
	DynamicsLow  string `json:"dynamicsLow" yaml:"dynamicsLow" form:"dynamicsLow"`
	DynamicsHigh string `json:"dynamicsHigh" yaml:"dynamicsHigh" form:"dynamicsHigh"`
	NoteDensity  string `json:"noteDensity" yaml:"noteDensity" form:"noteDensity"`
	Instrument   string `json:"instrument" yaml:"instrument" form:"instrument"`
	WeightA      string `json:"weightA" yaml:"weightA" form:"weightA"`
	WeightB      string `json:"weightB" yaml:"weightB" form:"weightB"`
	WeightC      string `json:"weightC" yaml:"weightC" form:"weightC"`
	WeightD      string `json:"weightD" yaml:"weightD" form:"weightD"`
	WeightE      string `json:"weightE" yaml:"weightE" form:"weightE"`
	WeightF      string `json:"weightF" yaml:"weightF" form:"weightF"`
	WeightG      string `json:"weightG" yaml:"weightG" form:"weightG"`
}

// DefaultRequest is a C major 4/4 song with a pop-leaning progression
func DefaultRequest() Request {
	return Request{
		Key:          "C",
		Tempo:        "120",
		TimeSig:      "4/4",
		OctaveLow:    "4",
		OctaveHigh:   "5",
		DynamicsLow:  "60",
		DynamicsHigh: "100",
		NoteDensity:  "80",
		Instrument:   "0",
		WeightA:      "0.3",
		WeightB:      "0.05",
		WeightC:      "0.05",
		WeightD:      "0.2",
		WeightE:      "0.25",
		WeightF:      "0.15",
		WeightG:      "0",
	}
}

func (r Request) weights() [7]struct{ name, value string } {
	return [7]struct{ name, value string }{
		{"weightA", r.WeightA},
		{"weightB", r.WeightB},
		{"weightC", r.WeightC},
		{"weightD", r.WeightD},
		{"weightE", r.WeightE},
		{"weightF", r.WeightF},
		{"weightG", r.WeightG},
	}
}

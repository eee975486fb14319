package rack_test

import (
	"fmt"

	"github.com/cwbudde/algo-modular/rack"
)

func ExamplePass() {
	panel := rack.NewPanel(rack.PassConfig())
	pass, err := rack.NewPass(rack.NewContext(), panel)
	if err != nil {
		panic(err)
	}

	panel.InputJack(rack.PassTrack1Input).SetVoltages(2, 4)
	panel.InputJack(rack.PassTrack2Input).SetVoltages(6)
	out := panel.OutputJack(rack.PassAudioOutput)
	out.Connect()

	for _, key := range []string{"power", "avg"} {
		knob := panel.KnobByKey(key)
		knob.SetValue(1)
		pass.Process()
		knob.SetValue(0)
	}

	fmt.Printf("%s channels=%d %.4f %.4f\n", pass.Mode(), out.Channels(), out.Written()[0], out.Written()[1])
	// Output:
	// avg channels=1 2.6667 1.3333
}

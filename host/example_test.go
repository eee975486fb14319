package host_test

import (
	"fmt"

	"github.com/cwbudde/algo-modular/host"
	"github.com/cwbudde/algo-modular/rack"
)

func ExampleRunner() {
	r, err := host.NewRunner(nil, "Pass", rack.NewContext())
	if err != nil {
		panic(err)
	}

	_ = r.Press("power")
	_ = r.Press("sum")
	r.Panel().InputJack(rack.PassTrack1Input).SetVoltages(1, 2)
	r.Panel().InputJack(rack.PassTrack2Input).SetVoltages(0.5)
	r.Step()

	out := r.Panel().OutputJack(rack.PassAudioOutput)
	fmt.Println(out.Channels(), out.Written())
	// Output: 1 [1.5 2]
}

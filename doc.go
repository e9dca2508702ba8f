// SPDX-License-Identifier: EPL-2.0

// Package granulizer is a granular synthesizer: it slices one audio asset
// into short overlapping grains, each shaped by a fixed envelope, and mixes
// them to an output.
//
// # Packages
//
//   - loader fetches the encoded asset from a URL or a file.
//   - engine owns the asset and turns PlayGrain calls into grains.
//   - graph is the software output service: sample clock, gain automation,
//     buffer sources and an asynchronous decoder.
//   - output plays a graph on the audio device.
//   - eventloop runs deferred work such as grain cleanup.
//   - audio and formats/* decode WAV, AIFF, Ogg Vorbis and MP3.
//   - config reads the HCL configuration file.
//
// # Quick Start
//
//	data, err := loader.New().Fetch(ctx, "samples/drone.ogg")
//	if err != nil {
//		return err
//	}
//
//	out, err := graph.NewContext(graph.Options{Registry: granulizer.NewRegistry()})
//	if err != nil {
//		return err
//	}
//
//	loop := eventloop.New()
//	go loop.Run(ctx)
//
//	e, err := engine.New(data, func() (graph.AudioContext, error) {
//		if _, err := output.Open(out, output.Options{}); err != nil {
//			return nil, err
//		}
//		return out, nil
//	}, loop)
//
//	e.PlayGrain(0)     // opens the output and starts decoding
//	<-e.Ready()
//	e.PlayGrain(12.5)  // a 0.6 s grain from 12.5 s into the asset
//
// # Decoders
//
// NewRegistry wires every bundled decoder. The container is recognised from
// its leading bytes, so the file name does not matter:
//
//	reg := granulizer.NewRegistry()
//	format, dec, err := reg.Detect(data)
package granulizer

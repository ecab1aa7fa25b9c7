package app

import (
	"fmt"
	"time"

	"github.com/angkonn/EchoSignRealtime/internal/feedback"
	"github.com/angkonn/EchoSignRealtime/internal/features"
	"github.com/angkonn/EchoSignRealtime/internal/glove"
	"github.com/angkonn/EchoSignRealtime/internal/knn"
	"github.com/angkonn/EchoSignRealtime/internal/session"
)

// RunMockConsole runs the whole classification pipeline against the mock
// glove and prints every status line to stdout. No hardware, no broker, no
// serial port; useful as a smoke check of the models.
func RunMockConsole() error {
	src := glove.NewMockSource()
	sess := session.New(knn.GestureModel, knn.SentenceModel, knn.SentenceScaler, feedback.Nop{}, session.DefaultOptions())

	// bounds matching the mock's flex swing
	cal := features.Calibration{
		FlexMin: [5]int{6000, 6000, 6000, 6000, 6000},
		FlexMax: [5]int{18000, 18000, 18000, 18000, 18000},
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		frame, err := src.ReadRaw()
		if err != nil {
			return err
		}

		sample := features.Normalize(cal, frame.Flex,
			frame.Ax, frame.Ay, frame.Az,
			frame.Gx, frame.Gy, frame.Gz)

		res := sess.Tick(sample, false, t)
		for _, line := range res.Lines {
			fmt.Println(line)
		}
	}
	return nil
}

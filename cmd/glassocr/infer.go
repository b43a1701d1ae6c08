// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/glassocr/canvas"
	"github.com/katalvlaran/glassocr/matrix"
	"github.com/katalvlaran/glassocr/pipeline"
)

const (
	defaultFeatureMapScale = 8
	barWidth               = 30
	topClasses             = 3
)

func (s *session) inferAction(c *cli.Context) error {
	p, err := s.buildPipeline(c)
	if err != nil {
		return err
	}
	img, err := s.input(c, p.Config().InputSide)
	if err != nil {
		return err
	}

	res, err := p.Infer(c.Context, img)
	if err != nil {
		return errors.Wrap(err, "inference")
	}
	s.printf("%s\n", renderResult(res))

	if out := c.String(flagFeatureMap); out != "" {
		if err := canvas.SaveImage(out, res.FirstFeatureMap, c.Int(flagScale)); err != nil {
			return errors.Wrap(err, "feature map")
		}
		s.logger.Info("feature map written", zap.String("path", out))
	}

	return nil
}

// input builds the image from --image, --stroke points, or both: the image
// is loaded onto the canvas first and the strokes are painted over it.
func (s *session) input(c *cli.Context, side int) (*matrix.Dense, error) {
	return buildInput(c.String(flagImage), c.Bool(flagInvert), c.StringSlice(flagStroke), side, s.logger)
}

func buildInput(path string, invert bool, strokes []string, side int, logger *zap.Logger) (*matrix.Dense, error) {
	if path == "" && len(strokes) == 0 {
		return nil, errors.Errorf("one of --%s or --%s is required", flagImage, flagStroke)
	}
	points := make([][2]float64, 0, len(strokes))
	for _, raw := range strokes {
		x, y, err := parsePoint(raw)
		if err != nil {
			return nil, err
		}
		points = append(points, [2]float64{x, y})
	}

	cv, err := canvas.New(side)
	if err != nil {
		return nil, err
	}
	if path != "" {
		img, err := canvas.Load(path, side, invert)
		if err != nil {
			return nil, errors.Wrap(err, "input image")
		}
		if err := cv.Replace(img); err != nil {
			return nil, errors.Wrap(err, "input image")
		}
	}
	if painted := cv.Stroke(points...); painted < len(points) {
		logger.Warn("stroke points outside canvas", zap.Int("skipped", len(points)-painted))
	}

	return cv.Snapshot(), nil
}

// parsePoint parses "x:y".
func parsePoint(raw string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, 0, errors.Errorf("stroke %q: want X:Y", raw)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, errors.Wrapf(err, "stroke %q", raw)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, errors.Wrapf(err, "stroke %q", raw)
	}

	return x, y, nil
}

// renderResult prints one row per class with a probability bar and marks
// the best class.
func renderResult(res *pipeline.Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Class", "Probability", "Logit", ""})
	logits := res.Logits.Data()
	for i, v := range res.Probabilities.Data() {
		mark := ""
		if i == res.Best {
			mark = " <"
		}
		t.AppendRow(table.Row{
			i,
			strconv.FormatFloat(float64(v), 'f', 4, 32),
			strconv.FormatFloat(float64(logits[i]), 'f', 3, 32),
			bar(v) + mark,
		})
	}
	t.AppendFooter(table.Row{"Best", res.Best, "", ""})

	ranked := res.Ranked()
	top := make([]string, 0, topClasses)
	for _, cl := range ranked[:min(topClasses, len(ranked))] {
		top = append(top, strconv.Itoa(cl.Label)+" ("+strconv.FormatFloat(float64(cl.Probability), 'f', 4, 32)+")")
	}

	return t.Render() + "\ntop: " + strings.Join(top, ", ")
}

func bar(p float32) string {
	if !(p > 0) {
		return ""
	}
	n := int(p*barWidth + 0.5)

	return strings.Repeat("#", min(n, barWidth))
}

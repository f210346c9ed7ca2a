package detect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"realcheck/api/internal/config"
	"realcheck/api/internal/util"
)

// DefaultMimeType is assumed under the permissive policy when the data URL
// header carries no recognisable MIME type.
const DefaultMimeType = "image/jpeg"

// Gateway classifies one image per call. It holds no mutable state and is
// safe for concurrent use.
type Gateway struct {
	engine      Engine
	permissive  bool
	instruction string
}

func NewGateway(cfg *config.Config, engine Engine) *Gateway {
	return &Gateway{
		engine:      engine,
		permissive:  cfg.MimePolicy == config.MimePolicyPermissive,
		instruction: Instruction,
	}
}

// Decode turns a data URL into a DecodedImage. Under the strict policy an
// unrecognised header is ErrMalformedInput; under the permissive policy it
// falls back to DefaultMimeType.
func Decode(raw string, permissive bool) (DecodedImage, error) {
	mime, payload, err := util.ParseDataURL(raw)
	switch {
	case errors.Is(err, util.ErrBadHeader) && permissive:
		mime = DefaultMimeType
	case err != nil:
		return DecodedImage{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	data, err := util.DecodeBase64(payload)
	if err != nil {
		return DecodedImage{}, fmt.Errorf("%w: bad base64 payload: %v", ErrMalformedInput, err)
	}
	if len(data) == 0 {
		return DecodedImage{}, fmt.Errorf("%w: %v", ErrMalformedInput, util.ErrEmptyPayload)
	}
	return DecodedImage{MimeType: mime, Payload: payload, Data: data}, nil
}

// Analyze runs Received → Decoding → Invoking → ParsingResponse and stops at
// the first failure. Exactly one remote call is made for valid input.
func (g *Gateway) Analyze(ctx context.Context, sub ImageSubmission) (Verdict, error) {
	if strings.TrimSpace(sub.RawBase64) == "" {
		return nil, ErrMissingInput
	}

	img, err := Decode(sub.RawBase64, g.permissive)
	if err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{
		"engine": g.engine.Name(),
		"model":  g.engine.GetModel(),
		"mime":   img.MimeType,
		"bytes":  len(img.Data),
	})

	text, err := g.engine.Generate(ctx, img, g.instruction)
	if err != nil {
		log.WithError(err).Error("remote model call failed")
		return nil, &RemoteCallError{Engine: g.engine.Name(), Err: err}
	}

	obj, err := util.ExtractJSON(text)
	if err != nil {
		log.WithError(err).WithField("model_output", util.Truncate(text, 2000)).Warn("model output is unparsable")
		return nil, &UnparsableOutputError{ModelOutput: text, Err: err}
	}

	log.Debug("image analyzed")
	return Verdict(obj), nil
}

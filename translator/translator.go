// Package translator adapts goshadertranslator to shader.Translator, turning
// WebGL2 GLSL into the dialect of the current desktop context.
package translator

import (
	"context"
	"fmt"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/shader"
	gst "github.com/richinsley/goshadertranslator"
)

// Translator wraps a goshadertranslator instance.
type Translator struct {
	gst  *gst.ShaderTranslator
	gles bool
}

var _ shader.Translator = (*Translator)(nil)

// New starts the translator runtime. GLES contexts get ESSL output, anything
// else GLSL 410.
func New(ctx context.Context, gles bool) (*Translator, error) {
	t, err := gst.NewShaderTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	return &Translator{gst: t, gles: gles}, nil
}

func (t *Translator) Translate(source string, stage graphics.ShaderStage) (shader.Translation, error) {
	outputFormat := gst.OutputFormatGLSL410
	if t.gles {
		outputFormat = gst.OutputFormatESSL
	}
	res, err := t.gst.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return shader.Translation{}, err
	}
	names := make(map[string]string, len(res.Variables))
	for name, v := range res.Variables {
		names[name] = v.MappedName
	}
	return shader.Translation{Code: res.Code, Names: names}, nil
}

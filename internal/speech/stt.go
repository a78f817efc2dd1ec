package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Recognizer turns recorded audio into text.
type Recognizer interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// WhisperRecognizer transcribes through a Whisper-compatible HTTP endpoint
// (whisper.cpp server, faster-whisper and the like).
type WhisperRecognizer struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
}

func NewWhisperRecognizer(endpoint string, log *zap.Logger) *WhisperRecognizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &WhisperRecognizer{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

func (r *WhisperRecognizer) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if r.endpoint == "" {
		return "", errors.New("no transcription endpoint configured")
	}
	if len(audio) == 0 {
		return "", errors.New("no audio captured; try again")
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", errors.Wrap(err, "creating form file")
	}
	if _, err := io.Copy(part, bytes.NewReader(audio)); err != nil {
		return "", errors.Wrap(err, "writing audio")
	}
	if language != "" {
		_ = form.WriteField("language", language)
	}
	_ = form.WriteField("response_format", "json")
	form.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, body)
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "transcription request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", errors.Errorf("transcription failed (status %d): %s", resp.StatusCode, detail)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "decoding transcription")
	}

	r.log.Debug("transcription complete", zap.Int("text_length", len(result.Text)))
	return result.Text, nil
}

// Recorder captures a bounded clip from the default microphone by shelling
// out to whichever capture tool is installed.
type Recorder struct {
	log *zap.Logger
}

func NewRecorder(log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{log: log}
}

// recordCommand returns the first available capture command, writing 16 kHz
// mono WAV to path for at most maxSecs seconds.
func recordCommand(path string, maxSecs int) (string, []string, error) {
	type candidate struct {
		name string
		args []string
	}
	secs := strconv.Itoa(maxSecs)
	candidates := []candidate{
		{"arecord", []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", secs, path}},
		{"sox", []string{"-q", "-d", "-r", "16000", "-c", "1", path, "trim", "0", secs}},
		{"ffmpeg", []string{"-loglevel", "quiet", "-f", defaultCaptureFormat(), "-i", "default", "-t", secs, "-ar", "16000", "-ac", "1", "-y", path}},
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return c.name, c.args, nil
		}
	}
	return "", nil, errors.New("no microphone capture tool found (install arecord, sox or ffmpeg)")
}

// Record captures up to maxSecs seconds of audio and returns it as WAV bytes.
func (r *Recorder) Record(ctx context.Context, maxSecs int) ([]byte, error) {
	if maxSecs <= 0 {
		maxSecs = 10
	}

	tmp, err := os.CreateTemp("", "quip_mic_*.wav")
	if err != nil {
		return nil, errors.Wrap(err, "creating capture file")
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	name, args, err := recordCommand(path, maxSecs)
	if err != nil {
		return nil, err
	}

	r.log.Debug("recording", zap.String("command", name), zap.Int("max_seconds", maxSecs))

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		return nil, errors.Wrapf(err, "capture command %s failed", name)
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading captured audio")
	}
	return audio, nil
}

func defaultCaptureFormat() string {
	// avfoundation on darwin, dshow on windows, alsa elsewhere
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "alsa"
	}
}

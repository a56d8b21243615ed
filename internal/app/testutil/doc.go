// Package testutil provides shared test doubles and fixtures for documio.
//
// Mocks (mocks.go) are built on testify/mock and cover the three pipeline
// collaborators:
//   - MockTranscriber: api.Transcriber
//   - MockGenerator: api.ReportGenerator
//   - MockRenderer: render.Renderer
//
// Fixtures (fixtures.go) hold a sample transcript, a four-line report, the
// form fields of a typical submission and a helper that writes a small WAV
// file into t.TempDir().
//
// # Usage
//
//	transcriber := testutil.NewMockTranscriber(t)
//	transcriber.On("Transcript", mock.Anything, audioPath).
//		Return(testutil.SampleTranscript, nil)
//	defer transcriber.AssertExpectations(t)
package testutil

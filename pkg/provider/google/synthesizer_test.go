package google

import (
	"testing"

	"github.com/voxlabs/chirp/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestConvertConfigDefault(t *testing.T) {
	config := convertConfig(&provider.SynthesizeOptions{})

	require.Equal(t, []string{"AUDIO"}, config.ResponseModalities)
	require.Nil(t, config.SpeechConfig)
}

func TestConvertConfigSingleVoice(t *testing.T) {
	config := convertConfig(&provider.SynthesizeOptions{
		Voice: "Kore",
	})

	require.NotNil(t, config.SpeechConfig)
	require.Nil(t, config.SpeechConfig.MultiSpeakerVoiceConfig)
	require.Equal(t, "Kore", config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestConvertConfigSpeakers(t *testing.T) {
	config := convertConfig(&provider.SynthesizeOptions{
		Speakers: []provider.Speaker{
			{Name: "A", Voice: "X"},
			{Name: "B", Voice: "Y"},
		},
	})

	require.Equal(t, []string{"AUDIO"}, config.ResponseModalities)
	require.NotNil(t, config.SpeechConfig)

	configs := config.SpeechConfig.MultiSpeakerVoiceConfig.SpeakerVoiceConfigs
	require.Len(t, configs, 2)

	require.Equal(t, "A", configs[0].Speaker)
	require.Equal(t, "X", configs[0].VoiceConfig.PrebuiltVoiceConfig.VoiceName)

	require.Equal(t, "B", configs[1].Speaker)
	require.Equal(t, "Y", configs[1].VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestConvertConfigSpeakersWinOverVoice(t *testing.T) {
	config := convertConfig(&provider.SynthesizeOptions{
		Voice: "Kore",

		Speakers: []provider.Speaker{
			{Name: "A", Voice: "X"},
		},
	})

	require.NotNil(t, config.SpeechConfig.MultiSpeakerVoiceConfig)
	require.Nil(t, config.SpeechConfig.VoiceConfig)
}

func TestPrebuiltVoices(t *testing.T) {
	require.Len(t, PrebuiltVoices, 10)
}

// Copyright 2024 vrecruit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppSnowflake_Generate(t *testing.T) {
	t.Parallel()
	gen, err := NewAppSnowflake(1)
	require.NoError(t, err)
	for app := App(0); app < appCount; app++ {
		id, err := gen.Generate(app)
		require.NoError(t, err)
		assert.Equal(t, app, id.AppID())
		assert.True(t, id.Int64() > 0)
	}
	_, err = gen.Generate(appCount)
	assert.ErrorIs(t, err, ErrUnknownApp)
}

func TestNewAppSnowflake_NodeOutOfRange(t *testing.T) {
	t.Parallel()
	_, err := NewAppSnowflake(32)
	assert.ErrorIs(t, err, ErrExceedNode)
}

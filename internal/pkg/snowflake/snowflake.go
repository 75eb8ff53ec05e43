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
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// App 区分不同业务的 ID 空间
type App uint

const (
	AppUser App = iota
	AppSchedule
	AppEvaluation
	appCount
)

const maxNode uint = 31

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrUnknownApp = errors.New("未知的app")
)

type Generator interface {
	Generate(app App) (ID, error)
}

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// AppSnowflake 按业务切分的雪花 ID 生成器，nodeId 表示第几个节点
type AppSnowflake struct {
	nodes syncx.Map[App, *snowflake.Node]
}

func NewAppSnowflake(nodeId uint) (*AppSnowflake, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeId)
	}
	sf := &AppSnowflake{}
	for app := App(0); app < appCount; app++ {
		nid := (int(app) << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		sf.nodes.Store(app, n)
	}
	return sf, nil
}

type ID int64

func (s *AppSnowflake) Generate(app App) (ID, error) {
	n, ok := s.nodes.Load(app)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownApp, app)
	}
	return ID(n.Generate()), nil
}

func (f ID) AppID() App {
	return App(snowflake.ID(f).Node() >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}

package types

import "fmt"

// The module's messages are hand-written rather than generated, so the
// gogoproto surface sdk.Msg requires is implemented here.

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreatePool) ProtoMessage()      {}

func (msg *MsgAddLiquidity) Reset()         { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddLiquidity) ProtoMessage()      {}

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgRemoveLiquidity) ProtoMessage()      {}

func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwap) ProtoMessage()      {}

func (msg *MsgClaimRewards) Reset()         { *msg = MsgClaimRewards{} }
func (msg *MsgClaimRewards) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgClaimRewards) ProtoMessage()      {}

func (msg *MsgAddAllowedToken) Reset()         { *msg = MsgAddAllowedToken{} }
func (msg *MsgAddAllowedToken) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddAllowedToken) ProtoMessage()      {}

func (msg *MsgSetRewardRate) Reset()         { *msg = MsgSetRewardRate{} }
func (msg *MsgSetRewardRate) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSetRewardRate) ProtoMessage()      {}

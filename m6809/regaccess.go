package m6809

// regaccess.go collects the small get/set adapter functions the opcode
// tables close over, keeping decode_table*.go focused on the opcode-to-
// mnemonic mapping rather than repeating `func(c *CPU) uint16 { return ... }`
// at every call site.

func getD(c *CPU) uint16 { return c.Reg.D() }
func setD(c *CPU, v uint16) { c.Reg.SetD(v) }

func getX(c *CPU) uint16 { return c.Reg.X }
func setX(c *CPU, v uint16) { c.Reg.X = v }

func getY(c *CPU) uint16 { return c.Reg.Y }
func setY(c *CPU, v uint16) { c.Reg.Y = v }

func getU(c *CPU) uint16 { return c.Reg.U }
func setU(c *CPU, v uint16) { c.Reg.U = v }

func getS(c *CPU) uint16 { return c.Reg.S }
func setS(c *CPU, v uint16) { c.Reg.S = v; c.nmiArmed = true }

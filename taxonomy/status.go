package taxonomy

import "fmt"

// StatusCode is the closed set of 32-bit status values a bootloader can
// return in a command response's status word, spanning the bootloader,
// flash, I2C, SPI, QSPI, OTFAD, FlexSPI NAND/NOR, OCOTP, SEMC NAND/NOR,
// SPIFI, EdgeLock, IAP, and trust-provisioning ranges.
type StatusCode uint32

// UnknownStatusCode is the sentinel returned by ParseStatusCode for any
// 32-bit value outside the documented set. ParseStatusCode returns only the
// sentinel; the raw value is not kept.
const UnknownStatusCode StatusCode = 0xFFFFFFFF

// StatusOtpVerifyFail (52009) is never sent by the device for a
// FlashProgramOnce response; the command engine synthesizes it locally
// when a verified write reads back with unset bits.
const (
	StatusSuccess StatusCode = 0
	StatusFail StatusCode = 1
	StatusReadOnly StatusCode = 2
	StatusOutOfRange StatusCode = 3
	StatusInvalidArgument StatusCode = 4
	StatusTimeout StatusCode = 5
	StatusNoTransferInProgress StatusCode = 6
	StatusFlashSizeError StatusCode = 100
	StatusFlashAlignmentError StatusCode = 101
	StatusFlashAddressError StatusCode = 102
	StatusFlashAccessError StatusCode = 103
	StatusFlashProtectionViolation StatusCode = 104
	StatusFlashCommandFailure StatusCode = 105
	StatusFlashUnknownProperty StatusCode = 106
	StatusFlashEraseKeyError StatusCode = 107
	StatusFlashRegionExecuteOnly StatusCode = 108
	StatusFlashExecInRamNotReady StatusCode = 109
	StatusFlashCommandNotSupported StatusCode = 111
	StatusFlashReadOnlyProperty StatusCode = 112
	StatusFlashInvalidPropertyValue StatusCode = 113
	StatusFlashInvalidSpeculationOption StatusCode = 114
	StatusFlashEccError StatusCode = 116
	StatusFlashCompareError StatusCode = 117
	StatusFlashRegulationLoss StatusCode = 118
	StatusFlashInvalidWaitStateCycles StatusCode = 119
	StatusFlashOutOfDateCfpaPage StatusCode = 132
	StatusFlashBlankIfrPageData StatusCode = 133
	StatusFlashEncryptedRegionsEraseNotDoneAtOnce StatusCode = 134
	StatusFlashProgramVerificationNotAllowed StatusCode = 135
	StatusFlashHashCheckError StatusCode = 136
	StatusFlashSealedPfrRegion StatusCode = 137
	StatusFlashPfrRegionWriteBroken StatusCode = 138
	StatusFlashNmpaUpdateNotAllowed StatusCode = 139
	StatusFlashCmpaCfgDirectEraseNotAllowed StatusCode = 140
	StatusFlashPfrBankIsLocked StatusCode = 141
	StatusFlashCfpaScratchPageInvalid StatusCode = 148
	StatusFlashCfpaVersionRollbackDisallowed StatusCode = 149
	StatusFlashReadHidingAreaDisallowed StatusCode = 150
	StatusFlashModifyProtectedAreaDisallowed StatusCode = 151
	StatusFlashCommandOperationInProgress StatusCode = 152
	StatusI2cSlaveTxUnderrun StatusCode = 200
	StatusI2cSlaveRxOverrun StatusCode = 201
	StatusI2cArbitrationLost StatusCode = 202
	StatusSpiSlaveTxUnderrun StatusCode = 300
	StatusSpiSlaveRxOverrun StatusCode = 301
	StatusQspiFlashSizeError StatusCode = 400
	StatusQspiFlashAlignmentError StatusCode = 401
	StatusQspiFlashAddressError StatusCode = 402
	StatusQspiFlashCommandFailure StatusCode = 403
	StatusQspiFlashUnknownProperty StatusCode = 404
	StatusQspiNotConfigured StatusCode = 405
	StatusQspiCommandNotSupported StatusCode = 406
	StatusQspiCommandTimeout StatusCode = 407
	StatusQspiWriteFailure StatusCode = 408
	StatusOtfadSecurityViolation StatusCode = 500
	StatusOtfadLogicallyDisabled StatusCode = 501
	StatusOtfadInvalidKey StatusCode = 502
	StatusOtfadInvalidKeyBlob StatusCode = 503
	StatusSendingOperationConditionError StatusCode = 1812
	StatusFlexspiSequenceExecutionTimeoutRt5xx StatusCode = 6000
	StatusFlexspiInvalidSequenceRt5xx StatusCode = 6001
	StatusFlexspiDeviceTimeoutRt5xx StatusCode = 6002
	StatusFlexspiSequenceExecutionTimeout StatusCode = 7000
	StatusFlexspiInvalidSequence StatusCode = 7001
	StatusFlexspiDeviceTimeout StatusCode = 7002
	StatusUnknownCommand StatusCode = 10000
	StatusSecurityViolation StatusCode = 10001
	StatusAbortDataPhase StatusCode = 10002
	StatusPingError StatusCode = 10003
	StatusNoResponse StatusCode = 10004
	StatusNoResponseExpected StatusCode = 10005
	StatusUnsupportedCommand StatusCode = 10006
	StatusRomldrSectionOverrun StatusCode = 10100
	StatusRomldrSignature StatusCode = 10101
	StatusRomldrSectionLength StatusCode = 10102
	StatusRomldrUnencryptedOnly StatusCode = 10103
	StatusRomldrEofReached StatusCode = 10104
	StatusRomldrChecksum StatusCode = 10105
	StatusRomldrCrc32Error StatusCode = 10106
	StatusRomldrUnknownCommand StatusCode = 10107
	StatusRomldrIdNotFound StatusCode = 10108
	StatusRomldrDataUnderrun StatusCode = 10109
	StatusRomldrJumpReturned StatusCode = 10110
	StatusRomldrCallFailed StatusCode = 10111
	StatusRomldrKeyNotFound StatusCode = 10112
	StatusRomldrSecureOnly StatusCode = 10113
	StatusRomldrResetReturned StatusCode = 10114
	StatusRomldrRollbackBlocked StatusCode = 10115
	StatusRomldrInvalidSectionMacCount StatusCode = 10116
	StatusRomldrUnexpectedCommand StatusCode = 10117
	StatusRomldrBadSbkek StatusCode = 10118
	StatusRomldrPendingJumpCommand StatusCode = 10119
	StatusMemoryRangeInvalid StatusCode = 10200
	StatusMemoryReadFailed StatusCode = 10201
	StatusMemoryWriteFailed StatusCode = 10202
	StatusMemoryCumulativeWrite StatusCode = 10203
	StatusMemoryAppOverlapWithExecuteOnlyRegion StatusCode = 10204
	StatusMemoryNotConfigured StatusCode = 10205
	StatusMemoryAlignmentError StatusCode = 10206
	StatusMemoryVerifyFailed StatusCode = 10207
	StatusMemoryWriteProtected StatusCode = 10208
	StatusMemoryAddressError StatusCode = 10209
	StatusMemoryBlankCheckFailed StatusCode = 10210
	StatusMemoryBlankPageReadDisallowed StatusCode = 10211
	StatusMemoryProtectedPageReadDisallowed StatusCode = 10212
	StatusMemoryPfrSpecRegionWriteBroken StatusCode = 10213
	StatusMemoryUnsupportedCommand StatusCode = 10214
	StatusUnknownProperty StatusCode = 10300
	StatusReadOnlyProperty StatusCode = 10301
	StatusInvalidPropertyValue StatusCode = 10302
	StatusAppCrcCheckPassed StatusCode = 10400
	StatusAppCrcCheckFailed StatusCode = 10401
	StatusAppCrcCheckInactive StatusCode = 10402
	StatusAppCrcCheckInvalid StatusCode = 10403
	StatusAppCrcCheckOutOfRange StatusCode = 10404
	StatusPacketizerNoPingResponse StatusCode = 10500
	StatusPacketizerInvalidPacketType StatusCode = 10501
	StatusPacketizerInvalidCrc StatusCode = 10502
	StatusPacketizerNoCommandResponse StatusCode = 10503
	StatusReliableUpdateSuccess StatusCode = 10600
	StatusReliableUpdateFail StatusCode = 10601
	StatusReliableUpdateInactive StatusCode = 10602
	StatusReliableUpdateBackupapplicationinvalid StatusCode = 10603
	StatusReliableUpdateStillinmainapplication StatusCode = 10604
	StatusReliableUpdateSwapsystemnotready StatusCode = 10605
	StatusReliableUpdateBackupbootloadernotready StatusCode = 10606
	StatusReliableUpdateSwapindicatoraddressinvalid StatusCode = 10607
	StatusReliableUpdateSwapsystemnotavailable StatusCode = 10608
	StatusReliableUpdateSwaptest StatusCode = 10609
	StatusSerialNorEepromAddressInvalid StatusCode = 10700
	StatusSerialNorEepromTransferError StatusCode = 10701
	StatusSerialNorEepromTypeInvalid StatusCode = 10702
	StatusSerialNorEepromSizeInvalid StatusCode = 10703
	StatusSerialNorEepromCommandInvalid StatusCode = 10704
	StatusRomApiNeedMoreData StatusCode = 10800
	StatusRomApiBufferSizeNotEnough StatusCode = 10801
	StatusRomApiInvalidBuffer StatusCode = 10802
	StatusFlexspinandReadPageFail StatusCode = 20000
	StatusFlexspinandReadCacheFail StatusCode = 20001
	StatusFlexspinandEccCheckFail StatusCode = 20002
	StatusFlexspinandPageLoadFail StatusCode = 20003
	StatusFlexspinandPageExecuteFail StatusCode = 20004
	StatusFlexspinandEraseBlockFail StatusCode = 20005
	StatusFlexspinandWaitTimeout StatusCode = 20006
	StatusFlexSpinandNotSupported StatusCode = 20007
	StatusFlexSpinandFcbUpdateFail StatusCode = 20008
	StatusFlexSpinandDbbtUpdateFail StatusCode = 20009
	StatusFlexspinandWritealignmenterror StatusCode = 20010
	StatusFlexspinandNotFound StatusCode = 20011
	StatusFlexspinorProgramFail StatusCode = 20100
	StatusFlexspinorEraseSectorFail StatusCode = 20101
	StatusFlexspinorEraseAllFail StatusCode = 20102
	StatusFlexspinorWaitTimeout StatusCode = 20103
	StatusFlexspinorNotSupported StatusCode = 20104
	StatusFlexspinorWriteAlignmentError StatusCode = 20105
	StatusFlexspinorCommandFailure StatusCode = 20106
	StatusFlexspinorSfdpNotFound StatusCode = 20107
	StatusFlexspinorUnsupportedSfdpVersion StatusCode = 20108
	StatusFlexspinorFlashNotFound StatusCode = 20109
	StatusFlexspinorDtrReadDummyProbeFailed StatusCode = 20110
	StatusOcotpReadFailure StatusCode = 20200
	StatusOcotpProgramFailure StatusCode = 20201
	StatusOcotpReloadFailure StatusCode = 20202
	StatusOcotpWaitTimeout StatusCode = 20203
	StatusSemcnorDeviceTimeout StatusCode = 21100
	StatusSemcnorInvalidMemoryAddress StatusCode = 21101
	StatusSemcnorUnmatchedCommandSet StatusCode = 21102
	StatusSemcnorAddressAlignmentError StatusCode = 21103
	StatusSemcnorInvalidCfiSignature StatusCode = 21104
	StatusSemcnorCommandErrorNoOpToSuspend StatusCode = 21105
	StatusSemcnorCommandErrorNoInfoAvailable StatusCode = 21106
	StatusSemcnorBlockEraseCommandFailure StatusCode = 21107
	StatusSemcnorBufferProgramCommandFailure StatusCode = 21108
	StatusSemcnorProgramVerifyFailure StatusCode = 21109
	StatusSemcnorEraseVerifyFailure StatusCode = 21110
	StatusSemcnorInvalidCfgTag StatusCode = 21116
	StatusSemcnandDeviceTimeout StatusCode = 21200
	StatusSemcnandInvalidMemoryAddress StatusCode = 21201
	StatusSemcnandNotEqualToOnePageSize StatusCode = 21202
	StatusSemcnandMoreThanOnePageSize StatusCode = 21203
	StatusSemcnandEccCheckFail StatusCode = 21204
	StatusSemcnandInvalidOnfiParameter StatusCode = 21205
	StatusSemcnandCannotEnableDeviceEcc StatusCode = 21206
	StatusSemcnandSwitchTimingModeFailure StatusCode = 21207
	StatusSemcnandProgramVerifyFailure StatusCode = 21208
	StatusSemcnandEraseVerifyFailure StatusCode = 21209
	StatusSemcnandInvalidReadbackBuffer StatusCode = 21210
	StatusSemcnandInvalidCfgTag StatusCode = 21216
	StatusSemcnandFailToUpdateFcb StatusCode = 21217
	StatusSemcnandFailToUpdateDbbt StatusCode = 21218
	StatusSemcnandDisallowOverwriteBcb StatusCode = 21219
	StatusSemcnandOnlySupportOnfiDevice StatusCode = 21220
	StatusSemcnandMoreThanMaxImageCopy StatusCode = 21221
	StatusSemcnandDisorderedImageCopies StatusCode = 21222
	StatusSpifinorProgramFail StatusCode = 22000
	StatusSpifinorEraseSectorfail StatusCode = 22001
	StatusSpifinorEraseAllFail StatusCode = 22002
	StatusSpifinorWaitTimeout StatusCode = 22003
	StatusSpifinorNotSupported StatusCode = 22004
	StatusSpifinorWriteAlignmentError StatusCode = 22005
	StatusSpifinorCommandFailure StatusCode = 22006
	StatusSpifinorSfdpNotFound StatusCode = 22007
	StatusEdgelockInvalidResponse StatusCode = 30000
	StatusEdgelockResponseError StatusCode = 30001
	StatusEdgelockAbort StatusCode = 30002
	StatusEdgelockOperationFailed StatusCode = 30003
	StatusEdgelockOtpProgramFailure StatusCode = 30004
	StatusEdgelockOtpLocked StatusCode = 30005
	StatusEdgelockOtpInvalidIdx StatusCode = 30006
	StatusEdgelockInvalidLifecycle StatusCode = 30007
	StatusOtpInvalidAddress StatusCode = 52801
	StatusOtpProgramFail StatusCode = 52802
	StatusOtpCrcFail StatusCode = 52803
	StatusOtpError StatusCode = 52804
	StatusOtpEccCrcFail StatusCode = 52805
	StatusOtpLocked StatusCode = 52806
	StatusOtpTimeout StatusCode = 52807
	StatusOtpCrcCheckPass StatusCode = 52808
	StatusOtpVerifyFail StatusCode = 52009
	StatusSecuritySubsystemError StatusCode = 1515890085
	StatusTpGeneralError StatusCode = 80000
	StatusTpCryptoError StatusCode = 80001
	StatusTpNullptrError StatusCode = 80002
	StatusTpAlreadyinitialized StatusCode = 80003
	StatusTpBuffersmall StatusCode = 80004
	StatusTpAddressError StatusCode = 80005
	StatusTpContainerInvalid StatusCode = 80006
	StatusTpContainerentryinvalid StatusCode = 80007
	StatusTpContainerentrynotfound StatusCode = 80008
	StatusTpInvalidstateoperation StatusCode = 80009
	StatusTpCommandError StatusCode = 80010
	StatusTpPufError StatusCode = 80011
	StatusTpFlashError StatusCode = 80012
	StatusTpSecretboxError StatusCode = 80013
	StatusTpPfrError StatusCode = 80014
	StatusTpVerificationError StatusCode = 80015
	StatusTpCfpaError StatusCode = 80016
	StatusTpCmpaError StatusCode = 80017
	StatusTpAddrOutOfRange StatusCode = 80018
	StatusTpContainerAddrError StatusCode = 80019
	StatusTpContainerAddrUnaligned StatusCode = 80020
	StatusTpContainerBuffSmall StatusCode = 80021
	StatusTpContainerNoEntry StatusCode = 80022
	StatusTpCertAddrError StatusCode = 80023
	StatusTpCertAddrUnaligned StatusCode = 80024
	StatusTpCertOverlapping StatusCode = 80025
	StatusTpPacketError StatusCode = 80026
	StatusTpPacketDataError StatusCode = 80027
	StatusTpUnknownCommand StatusCode = 80028
	StatusTpSb3FileError StatusCode = 80029
	StatusTpGeneralCriticalError StatusCode = 80101
	StatusTpCryptoCriticalError StatusCode = 80102
	StatusTpPufCriticalError StatusCode = 80103
	StatusTpPfrCriticalError StatusCode = 80104
	StatusTpPeripheralCriticalError StatusCode = 80105
	StatusTpPrinceCriticalError StatusCode = 80106
	StatusTpShaCheckCriticalError StatusCode = 80107
	StatusIapInvalidArgument StatusCode = 100001
	StatusIapOutOfMemory StatusCode = 100002
	StatusIapReadDisallowed StatusCode = 100003
	StatusIapCumulativeWrite StatusCode = 100004
	StatusIapEraseFailure StatusCode = 100005
	StatusIapCommandNotSupported StatusCode = 100006
	StatusIapMemoryAccessDisabled StatusCode = 100007
)

var statusNames = map[StatusCode]string{
	StatusSuccess: "Success",
	StatusFail: "Fail",
	StatusReadOnly: "ReadOnly",
	StatusOutOfRange: "OutOfRange",
	StatusInvalidArgument: "InvalidArgument",
	StatusTimeout: "Timeout",
	StatusNoTransferInProgress: "NoTransferInProgress",
	StatusFlashSizeError: "FlashSizeError",
	StatusFlashAlignmentError: "FlashAlignmentError",
	StatusFlashAddressError: "FlashAddressError",
	StatusFlashAccessError: "FlashAccessError",
	StatusFlashProtectionViolation: "FlashProtectionViolation",
	StatusFlashCommandFailure: "FlashCommandFailure",
	StatusFlashUnknownProperty: "FlashUnknownProperty",
	StatusFlashEraseKeyError: "FlashEraseKeyError",
	StatusFlashRegionExecuteOnly: "FlashRegionExecuteOnly",
	StatusFlashExecInRamNotReady: "FlashExecInRamNotReady",
	StatusFlashCommandNotSupported: "FlashCommandNotSupported",
	StatusFlashReadOnlyProperty: "FlashReadOnlyProperty",
	StatusFlashInvalidPropertyValue: "FlashInvalidPropertyValue",
	StatusFlashInvalidSpeculationOption: "FlashInvalidSpeculationOption",
	StatusFlashEccError: "FlashEccError",
	StatusFlashCompareError: "FlashCompareError",
	StatusFlashRegulationLoss: "FlashRegulationLoss",
	StatusFlashInvalidWaitStateCycles: "FlashInvalidWaitStateCycles",
	StatusFlashOutOfDateCfpaPage: "FlashOutOfDateCfpaPage",
	StatusFlashBlankIfrPageData: "FlashBlankIfrPageData",
	StatusFlashEncryptedRegionsEraseNotDoneAtOnce: "FlashEncryptedRegionsEraseNotDoneAtOnce",
	StatusFlashProgramVerificationNotAllowed: "FlashProgramVerificationNotAllowed",
	StatusFlashHashCheckError: "FlashHashCheckError",
	StatusFlashSealedPfrRegion: "FlashSealedPfrRegion",
	StatusFlashPfrRegionWriteBroken: "FlashPfrRegionWriteBroken",
	StatusFlashNmpaUpdateNotAllowed: "FlashNmpaUpdateNotAllowed",
	StatusFlashCmpaCfgDirectEraseNotAllowed: "FlashCmpaCfgDirectEraseNotAllowed",
	StatusFlashPfrBankIsLocked: "FlashPfrBankIsLocked",
	StatusFlashCfpaScratchPageInvalid: "FlashCfpaScratchPageInvalid",
	StatusFlashCfpaVersionRollbackDisallowed: "FlashCfpaVersionRollbackDisallowed",
	StatusFlashReadHidingAreaDisallowed: "FlashReadHidingAreaDisallowed",
	StatusFlashModifyProtectedAreaDisallowed: "FlashModifyProtectedAreaDisallowed",
	StatusFlashCommandOperationInProgress: "FlashCommandOperationInProgress",
	StatusI2cSlaveTxUnderrun: "I2cSlaveTxUnderrun",
	StatusI2cSlaveRxOverrun: "I2cSlaveRxOverrun",
	StatusI2cArbitrationLost: "I2cArbitrationLost",
	StatusSpiSlaveTxUnderrun: "SpiSlaveTxUnderrun",
	StatusSpiSlaveRxOverrun: "SpiSlaveRxOverrun",
	StatusQspiFlashSizeError: "QspiFlashSizeError",
	StatusQspiFlashAlignmentError: "QspiFlashAlignmentError",
	StatusQspiFlashAddressError: "QspiFlashAddressError",
	StatusQspiFlashCommandFailure: "QspiFlashCommandFailure",
	StatusQspiFlashUnknownProperty: "QspiFlashUnknownProperty",
	StatusQspiNotConfigured: "QspiNotConfigured",
	StatusQspiCommandNotSupported: "QspiCommandNotSupported",
	StatusQspiCommandTimeout: "QspiCommandTimeout",
	StatusQspiWriteFailure: "QspiWriteFailure",
	StatusOtfadSecurityViolation: "OtfadSecurityViolation",
	StatusOtfadLogicallyDisabled: "OtfadLogicallyDisabled",
	StatusOtfadInvalidKey: "OtfadInvalidKey",
	StatusOtfadInvalidKeyBlob: "OtfadInvalidKeyBlob",
	StatusSendingOperationConditionError: "SendingOperationConditionError",
	StatusFlexspiSequenceExecutionTimeoutRt5xx: "FlexspiSequenceExecutionTimeoutRt5xx",
	StatusFlexspiInvalidSequenceRt5xx: "FlexspiInvalidSequenceRt5xx",
	StatusFlexspiDeviceTimeoutRt5xx: "FlexspiDeviceTimeoutRt5xx",
	StatusFlexspiSequenceExecutionTimeout: "FlexspiSequenceExecutionTimeout",
	StatusFlexspiInvalidSequence: "FlexspiInvalidSequence",
	StatusFlexspiDeviceTimeout: "FlexspiDeviceTimeout",
	StatusUnknownCommand: "UnknownCommand",
	StatusSecurityViolation: "SecurityViolation",
	StatusAbortDataPhase: "AbortDataPhase",
	StatusPingError: "PingError",
	StatusNoResponse: "NoResponse",
	StatusNoResponseExpected: "NoResponseExpected",
	StatusUnsupportedCommand: "UnsupportedCommand",
	StatusRomldrSectionOverrun: "RomldrSectionOverrun",
	StatusRomldrSignature: "RomldrSignature",
	StatusRomldrSectionLength: "RomldrSectionLength",
	StatusRomldrUnencryptedOnly: "RomldrUnencryptedOnly",
	StatusRomldrEofReached: "RomldrEofReached",
	StatusRomldrChecksum: "RomldrChecksum",
	StatusRomldrCrc32Error: "RomldrCrc32Error",
	StatusRomldrUnknownCommand: "RomldrUnknownCommand",
	StatusRomldrIdNotFound: "RomldrIdNotFound",
	StatusRomldrDataUnderrun: "RomldrDataUnderrun",
	StatusRomldrJumpReturned: "RomldrJumpReturned",
	StatusRomldrCallFailed: "RomldrCallFailed",
	StatusRomldrKeyNotFound: "RomldrKeyNotFound",
	StatusRomldrSecureOnly: "RomldrSecureOnly",
	StatusRomldrResetReturned: "RomldrResetReturned",
	StatusRomldrRollbackBlocked: "RomldrRollbackBlocked",
	StatusRomldrInvalidSectionMacCount: "RomldrInvalidSectionMacCount",
	StatusRomldrUnexpectedCommand: "RomldrUnexpectedCommand",
	StatusRomldrBadSbkek: "RomldrBadSbkek",
	StatusRomldrPendingJumpCommand: "RomldrPendingJumpCommand",
	StatusMemoryRangeInvalid: "MemoryRangeInvalid",
	StatusMemoryReadFailed: "MemoryReadFailed",
	StatusMemoryWriteFailed: "MemoryWriteFailed",
	StatusMemoryCumulativeWrite: "MemoryCumulativeWrite",
	StatusMemoryAppOverlapWithExecuteOnlyRegion: "MemoryAppOverlapWithExecuteOnlyRegion",
	StatusMemoryNotConfigured: "MemoryNotConfigured",
	StatusMemoryAlignmentError: "MemoryAlignmentError",
	StatusMemoryVerifyFailed: "MemoryVerifyFailed",
	StatusMemoryWriteProtected: "MemoryWriteProtected",
	StatusMemoryAddressError: "MemoryAddressError",
	StatusMemoryBlankCheckFailed: "MemoryBlankCheckFailed",
	StatusMemoryBlankPageReadDisallowed: "MemoryBlankPageReadDisallowed",
	StatusMemoryProtectedPageReadDisallowed: "MemoryProtectedPageReadDisallowed",
	StatusMemoryPfrSpecRegionWriteBroken: "MemoryPfrSpecRegionWriteBroken",
	StatusMemoryUnsupportedCommand: "MemoryUnsupportedCommand",
	StatusUnknownProperty: "UnknownProperty",
	StatusReadOnlyProperty: "ReadOnlyProperty",
	StatusInvalidPropertyValue: "InvalidPropertyValue",
	StatusAppCrcCheckPassed: "AppCrcCheckPassed",
	StatusAppCrcCheckFailed: "AppCrcCheckFailed",
	StatusAppCrcCheckInactive: "AppCrcCheckInactive",
	StatusAppCrcCheckInvalid: "AppCrcCheckInvalid",
	StatusAppCrcCheckOutOfRange: "AppCrcCheckOutOfRange",
	StatusPacketizerNoPingResponse: "PacketizerNoPingResponse",
	StatusPacketizerInvalidPacketType: "PacketizerInvalidPacketType",
	StatusPacketizerInvalidCrc: "PacketizerInvalidCrc",
	StatusPacketizerNoCommandResponse: "PacketizerNoCommandResponse",
	StatusReliableUpdateSuccess: "ReliableUpdateSuccess",
	StatusReliableUpdateFail: "ReliableUpdateFail",
	StatusReliableUpdateInactive: "ReliableUpdateInactive",
	StatusReliableUpdateBackupapplicationinvalid: "ReliableUpdateBackupapplicationinvalid",
	StatusReliableUpdateStillinmainapplication: "ReliableUpdateStillinmainapplication",
	StatusReliableUpdateSwapsystemnotready: "ReliableUpdateSwapsystemnotready",
	StatusReliableUpdateBackupbootloadernotready: "ReliableUpdateBackupbootloadernotready",
	StatusReliableUpdateSwapindicatoraddressinvalid: "ReliableUpdateSwapindicatoraddressinvalid",
	StatusReliableUpdateSwapsystemnotavailable: "ReliableUpdateSwapsystemnotavailable",
	StatusReliableUpdateSwaptest: "ReliableUpdateSwaptest",
	StatusSerialNorEepromAddressInvalid: "SerialNorEepromAddressInvalid",
	StatusSerialNorEepromTransferError: "SerialNorEepromTransferError",
	StatusSerialNorEepromTypeInvalid: "SerialNorEepromTypeInvalid",
	StatusSerialNorEepromSizeInvalid: "SerialNorEepromSizeInvalid",
	StatusSerialNorEepromCommandInvalid: "SerialNorEepromCommandInvalid",
	StatusRomApiNeedMoreData: "RomApiNeedMoreData",
	StatusRomApiBufferSizeNotEnough: "RomApiBufferSizeNotEnough",
	StatusRomApiInvalidBuffer: "RomApiInvalidBuffer",
	StatusFlexspinandReadPageFail: "FlexspinandReadPageFail",
	StatusFlexspinandReadCacheFail: "FlexspinandReadCacheFail",
	StatusFlexspinandEccCheckFail: "FlexspinandEccCheckFail",
	StatusFlexspinandPageLoadFail: "FlexspinandPageLoadFail",
	StatusFlexspinandPageExecuteFail: "FlexspinandPageExecuteFail",
	StatusFlexspinandEraseBlockFail: "FlexspinandEraseBlockFail",
	StatusFlexspinandWaitTimeout: "FlexspinandWaitTimeout",
	StatusFlexSpinandNotSupported: "FlexSpinandNotSupported",
	StatusFlexSpinandFcbUpdateFail: "FlexSpinandFcbUpdateFail",
	StatusFlexSpinandDbbtUpdateFail: "FlexSpinandDbbtUpdateFail",
	StatusFlexspinandWritealignmenterror: "FlexspinandWritealignmenterror",
	StatusFlexspinandNotFound: "FlexspinandNotFound",
	StatusFlexspinorProgramFail: "FlexspinorProgramFail",
	StatusFlexspinorEraseSectorFail: "FlexspinorEraseSectorFail",
	StatusFlexspinorEraseAllFail: "FlexspinorEraseAllFail",
	StatusFlexspinorWaitTimeout: "FlexspinorWaitTimeout",
	StatusFlexspinorNotSupported: "FlexspinorNotSupported",
	StatusFlexspinorWriteAlignmentError: "FlexspinorWriteAlignmentError",
	StatusFlexspinorCommandFailure: "FlexspinorCommandFailure",
	StatusFlexspinorSfdpNotFound: "FlexspinorSfdpNotFound",
	StatusFlexspinorUnsupportedSfdpVersion: "FlexspinorUnsupportedSfdpVersion",
	StatusFlexspinorFlashNotFound: "FlexspinorFlashNotFound",
	StatusFlexspinorDtrReadDummyProbeFailed: "FlexspinorDtrReadDummyProbeFailed",
	StatusOcotpReadFailure: "OcotpReadFailure",
	StatusOcotpProgramFailure: "OcotpProgramFailure",
	StatusOcotpReloadFailure: "OcotpReloadFailure",
	StatusOcotpWaitTimeout: "OcotpWaitTimeout",
	StatusSemcnorDeviceTimeout: "SemcnorDeviceTimeout",
	StatusSemcnorInvalidMemoryAddress: "SemcnorInvalidMemoryAddress",
	StatusSemcnorUnmatchedCommandSet: "SemcnorUnmatchedCommandSet",
	StatusSemcnorAddressAlignmentError: "SemcnorAddressAlignmentError",
	StatusSemcnorInvalidCfiSignature: "SemcnorInvalidCfiSignature",
	StatusSemcnorCommandErrorNoOpToSuspend: "SemcnorCommandErrorNoOpToSuspend",
	StatusSemcnorCommandErrorNoInfoAvailable: "SemcnorCommandErrorNoInfoAvailable",
	StatusSemcnorBlockEraseCommandFailure: "SemcnorBlockEraseCommandFailure",
	StatusSemcnorBufferProgramCommandFailure: "SemcnorBufferProgramCommandFailure",
	StatusSemcnorProgramVerifyFailure: "SemcnorProgramVerifyFailure",
	StatusSemcnorEraseVerifyFailure: "SemcnorEraseVerifyFailure",
	StatusSemcnorInvalidCfgTag: "SemcnorInvalidCfgTag",
	StatusSemcnandDeviceTimeout: "SemcnandDeviceTimeout",
	StatusSemcnandInvalidMemoryAddress: "SemcnandInvalidMemoryAddress",
	StatusSemcnandNotEqualToOnePageSize: "SemcnandNotEqualToOnePageSize",
	StatusSemcnandMoreThanOnePageSize: "SemcnandMoreThanOnePageSize",
	StatusSemcnandEccCheckFail: "SemcnandEccCheckFail",
	StatusSemcnandInvalidOnfiParameter: "SemcnandInvalidOnfiParameter",
	StatusSemcnandCannotEnableDeviceEcc: "SemcnandCannotEnableDeviceEcc",
	StatusSemcnandSwitchTimingModeFailure: "SemcnandSwitchTimingModeFailure",
	StatusSemcnandProgramVerifyFailure: "SemcnandProgramVerifyFailure",
	StatusSemcnandEraseVerifyFailure: "SemcnandEraseVerifyFailure",
	StatusSemcnandInvalidReadbackBuffer: "SemcnandInvalidReadbackBuffer",
	StatusSemcnandInvalidCfgTag: "SemcnandInvalidCfgTag",
	StatusSemcnandFailToUpdateFcb: "SemcnandFailToUpdateFcb",
	StatusSemcnandFailToUpdateDbbt: "SemcnandFailToUpdateDbbt",
	StatusSemcnandDisallowOverwriteBcb: "SemcnandDisallowOverwriteBcb",
	StatusSemcnandOnlySupportOnfiDevice: "SemcnandOnlySupportOnfiDevice",
	StatusSemcnandMoreThanMaxImageCopy: "SemcnandMoreThanMaxImageCopy",
	StatusSemcnandDisorderedImageCopies: "SemcnandDisorderedImageCopies",
	StatusSpifinorProgramFail: "SpifinorProgramFail",
	StatusSpifinorEraseSectorfail: "SpifinorEraseSectorfail",
	StatusSpifinorEraseAllFail: "SpifinorEraseAllFail",
	StatusSpifinorWaitTimeout: "SpifinorWaitTimeout",
	StatusSpifinorNotSupported: "SpifinorNotSupported",
	StatusSpifinorWriteAlignmentError: "SpifinorWriteAlignmentError",
	StatusSpifinorCommandFailure: "SpifinorCommandFailure",
	StatusSpifinorSfdpNotFound: "SpifinorSfdpNotFound",
	StatusEdgelockInvalidResponse: "EdgelockInvalidResponse",
	StatusEdgelockResponseError: "EdgelockResponseError",
	StatusEdgelockAbort: "EdgelockAbort",
	StatusEdgelockOperationFailed: "EdgelockOperationFailed",
	StatusEdgelockOtpProgramFailure: "EdgelockOtpProgramFailure",
	StatusEdgelockOtpLocked: "EdgelockOtpLocked",
	StatusEdgelockOtpInvalidIdx: "EdgelockOtpInvalidIdx",
	StatusEdgelockInvalidLifecycle: "EdgelockInvalidLifecycle",
	StatusOtpInvalidAddress: "OtpInvalidAddress",
	StatusOtpProgramFail: "OtpProgramFail",
	StatusOtpCrcFail: "OtpCrcFail",
	StatusOtpError: "OtpError",
	StatusOtpEccCrcFail: "OtpEccCrcFail",
	StatusOtpLocked: "OtpLocked",
	StatusOtpTimeout: "OtpTimeout",
	StatusOtpCrcCheckPass: "OtpCrcCheckPass",
	StatusOtpVerifyFail: "OtpVerifyFail",
	StatusSecuritySubsystemError: "SecuritySubsystemError",
	StatusTpGeneralError: "TpGeneralError",
	StatusTpCryptoError: "TpCryptoError",
	StatusTpNullptrError: "TpNullptrError",
	StatusTpAlreadyinitialized: "TpAlreadyinitialized",
	StatusTpBuffersmall: "TpBuffersmall",
	StatusTpAddressError: "TpAddressError",
	StatusTpContainerInvalid: "TpContainerInvalid",
	StatusTpContainerentryinvalid: "TpContainerentryinvalid",
	StatusTpContainerentrynotfound: "TpContainerentrynotfound",
	StatusTpInvalidstateoperation: "TpInvalidstateoperation",
	StatusTpCommandError: "TpCommandError",
	StatusTpPufError: "TpPufError",
	StatusTpFlashError: "TpFlashError",
	StatusTpSecretboxError: "TpSecretboxError",
	StatusTpPfrError: "TpPfrError",
	StatusTpVerificationError: "TpVerificationError",
	StatusTpCfpaError: "TpCfpaError",
	StatusTpCmpaError: "TpCmpaError",
	StatusTpAddrOutOfRange: "TpAddrOutOfRange",
	StatusTpContainerAddrError: "TpContainerAddrError",
	StatusTpContainerAddrUnaligned: "TpContainerAddrUnaligned",
	StatusTpContainerBuffSmall: "TpContainerBuffSmall",
	StatusTpContainerNoEntry: "TpContainerNoEntry",
	StatusTpCertAddrError: "TpCertAddrError",
	StatusTpCertAddrUnaligned: "TpCertAddrUnaligned",
	StatusTpCertOverlapping: "TpCertOverlapping",
	StatusTpPacketError: "TpPacketError",
	StatusTpPacketDataError: "TpPacketDataError",
	StatusTpUnknownCommand: "TpUnknownCommand",
	StatusTpSb3FileError: "TpSb3FileError",
	StatusTpGeneralCriticalError: "TpGeneralCriticalError",
	StatusTpCryptoCriticalError: "TpCryptoCriticalError",
	StatusTpPufCriticalError: "TpPufCriticalError",
	StatusTpPfrCriticalError: "TpPfrCriticalError",
	StatusTpPeripheralCriticalError: "TpPeripheralCriticalError",
	StatusTpPrinceCriticalError: "TpPrinceCriticalError",
	StatusTpShaCheckCriticalError: "TpShaCheckCriticalError",
	StatusIapInvalidArgument: "IapInvalidArgument",
	StatusIapOutOfMemory: "IapOutOfMemory",
	StatusIapReadDisallowed: "IapReadDisallowed",
	StatusIapCumulativeWrite: "IapCumulativeWrite",
	StatusIapEraseFailure: "IapEraseFailure",
	StatusIapCommandNotSupported: "IapCommandNotSupported",
	StatusIapMemoryAccessDisabled: "IapMemoryAccessDisabled",
}

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StatusCode(%d)", uint32(s))
}

// IsSuccess reports whether s is StatusSuccess.
func (s StatusCode) IsSuccess() bool {
	return s == StatusSuccess
}

// IsMemoryBlankPageReadDisallowed reports whether s is the one additional
// status code readMemory accepts besides success.
func (s StatusCode) IsMemoryBlankPageReadDisallowed() bool {
	return s == StatusMemoryBlankPageReadDisallowed
}

// ParseStatusCode maps a raw 32-bit value to its StatusCode variant, or
// UnknownStatusCode if the value is not in the documented set.
func ParseStatusCode(raw uint32) StatusCode {
	if _, ok := statusNames[StatusCode(raw)]; ok {
		return StatusCode(raw)
	}
	return UnknownStatusCode
}
